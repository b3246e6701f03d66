package views

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/zirvehikayem/blogfront/api"
)

// Home renders the feed: hero, featured strip, category filter, post grid.
// active is the currently selected category label; toast is the one-shot
// message popped from the session.
func Home(cfg SiteConfig, posts, featured []api.Post, categories []string, active string, toast string) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	return page(cfg, meta, WebsiteJsonLD(cfg), toast, func(b *strings.Builder) {
		b.WriteString(`<section class="hero"><h1>` + esc(cfg.Name) + `</h1>`)
		if cfg.Description != "" {
			b.WriteString(`<p>` + esc(cfg.Description) + `</p>`)
		}
		b.WriteString(`</section>`)

		if len(featured) > 0 {
			b.WriteString(`<section class="featured"><h2>Öne Çıkanlar</h2><div class="post-grid">`)
			for _, p := range featured {
				writePostCard(b, p)
			}
			b.WriteString(`</div></section>`)
		}

		writeCategoryFilter(b, categories, active)

		b.WriteString(`<section class="posts"><div class="post-grid">`)
		if len(posts) == 0 {
			b.WriteString(`<p class="empty">Henüz yazı yok.</p>`)
		}
		for _, p := range posts {
			writePostCard(b, p)
		}
		b.WriteString(`</div></section>`)
	})
}

// writeCategoryFilter emits the pill row. The catch-all label links back to
// the unfiltered feed.
func writeCategoryFilter(b *strings.Builder, categories []string, active string) {
	if len(categories) == 0 {
		return
	}
	if active == "" {
		active = api.CategoryAll
	}
	b.WriteString(`<nav class="category-filter"><ul>`)
	for _, cat := range categories {
		href := "/"
		if cat != api.CategoryAll {
			href = "/?category=" + url.QueryEscape(cat)
		}
		class := "pill"
		if cat == active {
			class += " active"
		}
		b.WriteString(`<li><a class="` + class + `" href="` + esc(href) + `">` + esc(cat) + `</a></li>`)
	}
	b.WriteString(`</ul></nav>`)
}

func writePostCard(b *strings.Builder, p api.Post) {
	href := "/post/" + url.PathEscape(p.Slug) + "/"
	b.WriteString(`<article class="post-card">`)
	b.WriteString(`<span class="category">` + esc(p.Category) + `</span>`)
	b.WriteString(`<h3><a href="` + esc(href) + `">` + esc(p.Title) + `</a></h3>`)
	b.WriteString(`<p>` + esc(p.Excerpt) + `</p>`)
	b.WriteString(`<footer><span>` + esc(p.Author) + `</span>`)
	b.WriteString(`<time datetime="` + esc(p.PublishDate) + `">` + esc(FormatDate(p.PublishDate)) + `</time>`)
	if p.ReadTime != "" {
		b.WriteString(`<span>` + esc(p.ReadTime) + `</span>`)
	}
	b.WriteString(`</footer></article>`)
}
