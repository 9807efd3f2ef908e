// Package commenttree assembles the flat comment list returned by the API
// into a nested reply tree for rendering.
package commenttree

import (
	"sort"

	"github.com/devfolio/backend/internal/models"
)

// DefaultMaxDepth is the nesting level past which replying is disabled.
// Existing deeper replies still render, indented.
const DefaultMaxDepth = 15

// Node is a comment with its resolved replies.
type Node struct {
	Comment  models.Comment
	Replies  []*Node
	Depth    int
	CanReply bool
}

// Builder turns a flat comment slice into a reply tree.
type Builder struct {
	// MaxDepth caps the level at which CanReply is set. Zero or negative
	// means DefaultMaxDepth.
	MaxDepth int
}

// Build reconstructs the reply hierarchy from parent pointers.
//
// Root comments (nil ParentID) are ordered newest-first. Replies keep the
// order of the input slice. A comment whose parent is absent from the input
// is dropped entirely: it is neither promoted to a root nor attached
// anywhere. Build is a pure function; the same input always yields a
// structurally identical tree.
func (b Builder) Build(comments []models.Comment) []*Node {
	maxDepth := b.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	nodes := make(map[uint]*Node, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &Node{Comment: comments[i]}
	}

	var roots []*Node
	for i := range comments {
		n := nodes[comments[i].ID]
		parentID := comments[i].ParentID
		if parentID == nil {
			roots = append(roots, n)
			continue
		}
		parent, ok := nodes[*parentID]
		if !ok {
			// Orphan: the parent was deleted or is outside this page.
			continue
		}
		parent.Replies = append(parent.Replies, n)
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Comment.CreatedAt.After(roots[j].Comment.CreatedAt)
	})

	for _, root := range roots {
		annotate(root, 0, maxDepth)
	}
	return roots
}

// Build assembles the tree with the default depth cap.
func Build(comments []models.Comment) []*Node {
	return Builder{}.Build(comments)
}

func annotate(n *Node, depth, maxDepth int) {
	n.Depth = depth
	n.CanReply = depth < maxDepth
	for _, reply := range n.Replies {
		annotate(reply, depth+1, maxDepth)
	}
}

// Walk visits every node in the tree depth-first, parents before replies.
func Walk(roots []*Node, fn func(*Node)) {
	for _, n := range roots {
		fn(n)
		Walk(n.Replies, fn)
	}
}

// Find returns the node with the given comment id, or nil.
func Find(roots []*Node, id uint) *Node {
	for _, n := range roots {
		if n.Comment.ID == id {
			return n
		}
		if found := Find(n.Replies, id); found != nil {
			return found
		}
	}
	return nil
}
