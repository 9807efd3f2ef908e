// Package client is a Go client for the devfolio API. It also carries the
// pieces the browser app used to own: per-resource loading state, comment
// tree assembly and the like/moderation guards.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/devfolio/backend/internal/models"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the devfolio REST API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient creates a client for the API at baseURL (e.g.
// "https://example.com/api/v1").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken sets the bearer token sent on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// LoginResult is the response of a successful Firebase login exchange.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// FirebaseLogin exchanges a Firebase ID token for a local JWT and stores it
// on the client.
func (c *Client) FirebaseLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/firebase-login", map[string]string{"idToken": idToken}, &result)
	if err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// --- Blogs ---

func (c *Client) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := c.do(ctx, http.MethodGet, "/blogs", nil, &blogs)
	return blogs, err
}

func (c *Client) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	if err := c.do(ctx, http.MethodGet, "/blogs/"+id, nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) CreateBlog(ctx context.Context, req models.CreateBlogRequest) (*models.Blog, error) {
	var blog models.Blog
	if err := c.do(ctx, http.MethodPost, "/blogs", req, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, req models.UpdateBlogRequest) (*models.Blog, error) {
	var blog models.Blog
	if err := c.do(ctx, http.MethodPut, "/blogs/"+id, req, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/blogs/"+id, nil, nil)
}

// --- Comments ---

func (c *Client) ListComments(ctx context.Context, blogID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.do(ctx, http.MethodGet, "/blogs/"+blogID+"/comments", nil, &comments)
	return comments, err
}

func (c *Client) CreateComment(ctx context.Context, blogID, content string, parentID *uint) (*models.Comment, error) {
	req := models.CreateCommentRequest{Content: content, ParentID: parentID}
	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, "/blogs/"+blogID+"/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) UpdateComment(ctx context.Context, blogID string, commentID uint, content string) (*models.Comment, error) {
	req := models.UpdateCommentRequest{Content: content}
	var comment models.Comment
	path := fmt.Sprintf("/blogs/%s/comments/%d", blogID, commentID)
	if err := c.do(ctx, http.MethodPut, path, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, blogID string, commentID uint) error {
	path := fmt.Sprintf("/blogs/%s/comments/%d", blogID, commentID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// LikeResult is the response of a like or unlike request.
type LikeResult struct {
	Message    string   `json:"message"`
	LikesCount int      `json:"likes_count"`
	Likes      []string `json:"likes"`
}

func (c *Client) LikeComment(ctx context.Context, blogID string, commentID uint) (*LikeResult, error) {
	var result LikeResult
	path := fmt.Sprintf("/blogs/%s/comments/%d/like", blogID, commentID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UnlikeComment(ctx context.Context, blogID string, commentID uint) (*LikeResult, error) {
	var result LikeResult
	path := fmt.Sprintf("/blogs/%s/comments/%d/unlike", blogID, commentID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// --- Portfolios ---

func (c *Client) ListPortfolios(ctx context.Context) ([]models.Portfolio, error) {
	var items []models.Portfolio
	err := c.do(ctx, http.MethodGet, "/portfolios", nil, &items)
	return items, err
}

func (c *Client) CreatePortfolio(ctx context.Context, req models.CreatePortfolioRequest) (*models.Portfolio, error) {
	var item models.Portfolio
	if err := c.do(ctx, http.MethodPost, "/portfolios", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdatePortfolio(ctx context.Context, id string, req models.UpdatePortfolioRequest) (*models.Portfolio, error) {
	var item models.Portfolio
	if err := c.do(ctx, http.MethodPut, "/portfolios/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeletePortfolio(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/portfolios/"+id, nil, nil)
}

// --- Testimonials ---

func (c *Client) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := c.do(ctx, http.MethodGet, "/testimonials", nil, &testimonials)
	return testimonials, err
}

func (c *Client) CreateTestimonial(ctx context.Context, req models.CreateTestimonialRequest) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := c.do(ctx, http.MethodPost, "/testimonials", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, id string, req models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := c.do(ctx, http.MethodPut, "/testimonials/"+id, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/testimonials/"+id, nil, nil)
}
