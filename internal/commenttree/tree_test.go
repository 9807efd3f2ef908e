package commenttree

import (
	"testing"
	"time"

	"github.com/devfolio/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func comment(id uint, parentID *uint, minutesAfterBase int) models.Comment {
	return models.Comment{
		ID:        id,
		BlogID:    "blog-1",
		Content:   "comment",
		ParentID:  parentID,
		CreatedAt: base.Add(time.Duration(minutesAfterBase) * time.Minute),
	}
}

func ptr(id uint) *uint { return &id }

func TestBuildSingleRoot(t *testing.T) {
	roots := Build([]models.Comment{comment(1, nil, 0)})

	require.Len(t, roots, 1)
	assert.Equal(t, uint(1), roots[0].Comment.ID)
	assert.Empty(t, roots[0].Replies)
	assert.Equal(t, 0, roots[0].Depth)
	assert.True(t, roots[0].CanReply)
}

func TestBuildAttachesReplyToParent(t *testing.T) {
	roots := Build([]models.Comment{
		comment(1, nil, 0),
		comment(2, ptr(1), 1),
	})

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Replies, 1)
	reply := roots[0].Replies[0]
	assert.Equal(t, uint(2), reply.Comment.ID)
	require.NotNil(t, reply.Comment.ParentID)
	assert.Equal(t, uint(1), *reply.Comment.ParentID)
	assert.Equal(t, 1, reply.Depth)
}

func TestBuildReplyAppearsExactlyOnce(t *testing.T) {
	roots := Build([]models.Comment{
		comment(1, nil, 0),
		comment(2, nil, 1),
		comment(3, ptr(1), 2),
	})

	seen := 0
	Walk(roots, func(n *Node) {
		if n.Comment.ID == 3 {
			seen++
			require.NotNil(t, n.Comment.ParentID)
			assert.Equal(t, uint(1), *n.Comment.ParentID)
		}
	})
	assert.Equal(t, 1, seen)
}

func TestBuildDropsOrphans(t *testing.T) {
	// Parent 99 is not in the input: the reply must not appear anywhere,
	// not even promoted to a root.
	roots := Build([]models.Comment{
		comment(1, nil, 0),
		comment(2, ptr(99), 1),
	})

	require.Len(t, roots, 1)
	assert.Equal(t, uint(1), roots[0].Comment.ID)
	assert.Nil(t, Find(roots, 2))
}

func TestBuildRootsNewestFirst(t *testing.T) {
	roots := Build([]models.Comment{
		comment(1, nil, 0),
		comment(2, nil, 10),
		comment(3, nil, 5),
	})

	require.Len(t, roots, 3)
	assert.Equal(t, uint(2), roots[0].Comment.ID)
	assert.Equal(t, uint(3), roots[1].Comment.ID)
	assert.Equal(t, uint(1), roots[2].Comment.ID)
}

func TestBuildPreservesReplyOrder(t *testing.T) {
	// Replies keep flat-list order even when timestamps disagree with it.
	roots := Build([]models.Comment{
		comment(1, nil, 0),
		comment(2, ptr(1), 30),
		comment(3, ptr(1), 10),
		comment(4, ptr(1), 20),
	})

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Replies, 3)
	assert.Equal(t, uint(2), roots[0].Replies[0].Comment.ID)
	assert.Equal(t, uint(3), roots[0].Replies[1].Comment.ID)
	assert.Equal(t, uint(4), roots[0].Replies[2].Comment.ID)
}

func TestBuildIsIdempotent(t *testing.T) {
	input := []models.Comment{
		comment(1, nil, 0),
		comment(2, ptr(1), 1),
		comment(3, ptr(2), 2),
		comment(4, nil, 3),
		comment(5, ptr(99), 4),
	}

	first := Build(input)
	second := Build(input)

	assert.Equal(t, flatten(first), flatten(second))
}

func TestBuildDepthCap(t *testing.T) {
	// Chain 1 <- 2 <- 3 <- 4 with a cap of 2: nodes at the cap lose the
	// reply affordance but deeper comments still render.
	roots := Builder{MaxDepth: 2}.Build([]models.Comment{
		comment(1, nil, 0),
		comment(2, ptr(1), 1),
		comment(3, ptr(2), 2),
		comment(4, ptr(3), 3),
	})

	require.Len(t, roots, 1)
	level1 := roots[0].Replies[0]
	level2 := level1.Replies[0]
	level3 := level2.Replies[0]

	assert.True(t, roots[0].CanReply)
	assert.True(t, level1.CanReply)
	assert.False(t, level2.CanReply)
	assert.False(t, level3.CanReply)
	assert.Equal(t, 3, level3.Depth)
}

func TestBuildEmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil))
	assert.Empty(t, Build([]models.Comment{}))
}

func TestFind(t *testing.T) {
	roots := Build([]models.Comment{
		comment(1, nil, 0),
		comment(2, ptr(1), 1),
		comment(3, ptr(2), 2),
	})

	require.NotNil(t, Find(roots, 3))
	assert.Equal(t, 2, Find(roots, 3).Depth)
	assert.Nil(t, Find(roots, 42))
}

// flatten renders the tree as (id, depth, parent) tuples in visit order so
// two trees can be compared structurally.
type flatNode struct {
	ID     uint
	Depth  int
	Parent uint
}

func flatten(roots []*Node) []flatNode {
	var out []flatNode
	Walk(roots, func(n *Node) {
		var parent uint
		if n.Comment.ParentID != nil {
			parent = *n.Comment.ParentID
		}
		out = append(out, flatNode{ID: n.Comment.ID, Depth: n.Depth, Parent: parent})
	})
	return out
}
