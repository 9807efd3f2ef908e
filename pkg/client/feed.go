package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/devfolio/backend/internal/commenttree"
	"github.com/devfolio/backend/internal/models"
)

// CommentFeed manages the comment section of a single blog post: fetching
// the flat list, assembling the reply tree and guarding the voting and
// moderation actions for the current user.
type CommentFeed struct {
	client  *Client
	blogID  string
	userUID string
	isAdmin bool
	builder commenttree.Builder

	// ConfirmDelete, when set, is consulted before a delete request is
	// issued. Returning false aborts the delete.
	ConfirmDelete func(models.Comment) bool

	comments Resource[[]models.Comment]
	tree     []*commenttree.Node
}

// NewCommentFeed creates a feed for one blog post. userUID may be empty for
// an anonymous viewer; voting and moderation are then unavailable.
func NewCommentFeed(c *Client, blogID, userUID string, isAdmin bool) *CommentFeed {
	return &CommentFeed{
		client:  c,
		blogID:  blogID,
		userUID: userUID,
		isAdmin: isAdmin,
	}
}

// SetMaxDepth overrides the nesting level past which replying is disabled.
func (f *CommentFeed) SetMaxDepth(depth int) {
	f.builder.MaxDepth = depth
}

// Refresh fetches the full flat comment list and rebuilds the tree. Every
// mutation below re-fetches through here rather than patching locally.
func (f *CommentFeed) Refresh(ctx context.Context) error {
	f.comments.Start()
	comments, err := f.client.ListComments(ctx, f.blogID)
	if err != nil {
		f.comments.Fail(err)
		return err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	f.comments.Succeed(comments)
	f.tree = f.builder.Build(comments)
	return nil
}

// Tree returns the assembled reply tree from the last Refresh.
func (f *CommentFeed) Tree() []*commenttree.Node {
	return f.tree
}

// State exposes the loading state of the comment list.
func (f *CommentFeed) State() (Status, []models.Comment, error) {
	return f.comments.Snapshot()
}

// Comment posts a new top-level comment.
func (f *CommentFeed) Comment(ctx context.Context, content string) error {
	if _, err := f.client.CreateComment(ctx, f.blogID, content, nil); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// Reply posts a reply to an existing comment. Replying below the depth cap
// is rejected before any request is made.
func (f *CommentFeed) Reply(ctx context.Context, parentID uint, content string) error {
	if node := commenttree.Find(f.tree, parentID); node != nil && !node.CanReply {
		return fmt.Errorf("nesting limit reached, cannot reply to comment %d", parentID)
	}
	if _, err := f.client.CreateComment(ctx, f.blogID, content, &parentID); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// Edit updates a comment's content after checking the moderation guard.
func (f *CommentFeed) Edit(ctx context.Context, comment models.Comment, content string) error {
	if !f.CanEdit(comment) {
		return fmt.Errorf("cannot edit comment %d: not the author", comment.ID)
	}
	if _, err := f.client.UpdateComment(ctx, f.blogID, comment.ID, content); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// Delete removes a comment. The ConfirmDelete hook, when present, acts as
// the destructive-action confirmation step.
func (f *CommentFeed) Delete(ctx context.Context, comment models.Comment) error {
	if !f.CanDelete(comment) {
		return fmt.Errorf("cannot delete comment %d: not the author", comment.ID)
	}
	if f.ConfirmDelete != nil && !f.ConfirmDelete(comment) {
		return nil
	}
	if err := f.client.DeleteComment(ctx, f.blogID, comment.ID); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// Like upvotes a comment. Pressing upvote on an already-liked comment is a
// no-op: no request is issued. The server applies set semantics regardless,
// so the guard and the store agree.
func (f *CommentFeed) Like(ctx context.Context, comment models.Comment) error {
	if f.userUID == "" {
		return fmt.Errorf("cannot like: no authenticated user")
	}
	for _, uid := range comment.Likes {
		if uid == f.userUID {
			return nil
		}
	}
	if _, err := f.client.LikeComment(ctx, f.blogID, comment.ID); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// Unlike removes the current user's vote. Unliking a comment the user
// never liked is a no-op server-side.
func (f *CommentFeed) Unlike(ctx context.Context, comment models.Comment) error {
	if f.userUID == "" {
		return fmt.Errorf("cannot unlike: no authenticated user")
	}
	if _, err := f.client.UnlikeComment(ctx, f.blogID, comment.ID); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// HasLiked reports whether the current user is in the comment's likes set.
func (f *CommentFeed) HasLiked(comment models.Comment) bool {
	for _, uid := range comment.Likes {
		if uid == f.userUID && uid != "" {
			return true
		}
	}
	return false
}

// CanEdit reports whether the current user may edit the comment.
func (f *CommentFeed) CanEdit(comment models.Comment) bool {
	return f.userUID != "" && comment.Author == f.userUID
}

// CanDelete reports whether the current user may delete the comment.
// Admins may delete any comment.
func (f *CommentFeed) CanDelete(comment models.Comment) bool {
	if f.isAdmin {
		return true
	}
	return f.CanEdit(comment)
}
