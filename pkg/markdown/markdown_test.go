package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeadingsAndLists(t *testing.T) {
	out := Render("# Title\n\n- one\n- two\n")

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<li>one</li>")
	assert.Contains(t, out, "<li>two</li>")
}

func TestRenderStripsScripts(t *testing.T) {
	out := Render("hello <script>alert(1)</script> world")

	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "hello")
}

func TestRenderGFMTable(t *testing.T) {
	out := Render("| a | b |\n|---|---|\n| 1 | 2 |\n")

	assert.Contains(t, out, "<table")
}

func TestRenderLinksOpenInNewTab(t *testing.T) {
	out := Render("[site](https://example.com)")

	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, "noreferrer")
}
