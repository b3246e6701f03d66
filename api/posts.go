package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ListPosts returns posts, optionally filtered by category. The sentinel
// CategoryAll (and the empty string) mean no filter.
func (c *Client) ListPosts(ctx context.Context, category string) ([]Post, error) {
	path := "/posts"
	if category != "" && category != CategoryAll {
		path += "?category=" + url.QueryEscape(category)
	}
	var posts []Post
	if err := c.do(ctx, http.MethodGet, path, "", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FeaturedPosts returns only posts flagged as featured.
func (c *Client) FeaturedPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts/featured", "", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostBySlug resolves a single post. A backend 404 is reported as ErrNotFound
// so callers can show a dedicated not-found page instead of a generic error.
func (c *Client) PostBySlug(ctx context.Context, slug string) (Post, error) {
	var post Post
	err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(slug), "", nil, &post)
	if err != nil {
		var stErr *StatusError
		if errors.As(err, &stErr) && stErr.Code == http.StatusNotFound {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return post, nil
}

// CreatePost creates a new post and returns the canonical server copy.
func (c *Client) CreatePost(ctx context.Context, token string, in PostInput) (Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/posts", token, in, &post); err != nil {
		return Post{}, err
	}
	return post, nil
}

// UpdatePost updates the post with the given id.
func (c *Client) UpdatePost(ctx context.Context, token, id string, in PostInput) (Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), token, in, &post); err != nil {
		return Post{}, err
	}
	return post, nil
}

// DeletePost deletes the post with the given id.
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), token, nil, nil)
}

// Categories returns all category labels. The backend guarantees the
// CategoryAll sentinel is the first entry.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
