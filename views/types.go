package views

import "time"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Zirve Hikayem")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// PostForm is the admin editor's working copy of a post. Tags travel as a
// single comma-separated string; an empty ID means a new post.
type PostForm struct {
	ID       string
	Title    string
	Excerpt  string
	Content  string
	Category string
	Tags     string
	Featured bool
}

// Image is one uploaded file in the admin image manager.
type Image struct {
	Filename   string
	Size       int64
	UploadedAt time.Time
}
