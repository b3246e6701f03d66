package api

import (
	"context"
	"net/http"
)

// SubmitContact sends a contact form message. The returned Ack carries the
// backend's localized confirmation text.
func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) (Ack, error) {
	var ack Ack
	if err := c.do(ctx, http.MethodPost, "/contact", "", msg, &ack); err != nil {
		return Ack{}, err
	}
	return ack, nil
}

// AboutContent fetches the about-page content block.
func (c *Client) AboutContent(ctx context.Context) (About, error) {
	var about About
	if err := c.do(ctx, http.MethodGet, "/about", "", nil, &about); err != nil {
		return About{}, err
	}
	return about, nil
}

// UpdateAbout replaces the about-page content (admin only).
func (c *Client) UpdateAbout(ctx context.Context, token string, about About) (About, error) {
	var out About
	if err := c.do(ctx, http.MethodPut, "/about", token, about, &out); err != nil {
		return About{}, err
	}
	return out, nil
}
