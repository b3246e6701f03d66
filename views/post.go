package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/zirvehikayem/blogfront/api"
)

// Post renders a single article with up to two related posts from the same
// category. The body is admin-authored HTML and is written through as-is.
func Post(cfg SiteConfig, post api.Post, related []api.Post, toast string) templ.Component {
	meta := PageMeta{
		Title:       post.Title + " | " + cfg.Name,
		Description: post.Excerpt,
		URL:         buildURL(cfg.URL, "post", post.Slug),
		OGType:      "article",
	}
	return page(cfg, meta, BlogPostingJsonLD(cfg, post), toast, func(b *strings.Builder) {
		b.WriteString(`<article class="post">`)
		b.WriteString(`<header>`)
		b.WriteString(`<span class="category">` + esc(post.Category) + `</span>`)
		b.WriteString(`<h1>` + esc(post.Title) + `</h1>`)
		b.WriteString(`<p class="post-meta">`)
		b.WriteString(`<span>` + esc(post.Author) + `</span>`)
		b.WriteString(`<time datetime="` + esc(post.PublishDate) + `">` + esc(FormatDate(post.PublishDate)) + `</time>`)
		if post.ReadTime != "" {
			b.WriteString(`<span>` + esc(post.ReadTime) + `</span>`)
		}
		b.WriteString(`</p></header>`)
		b.WriteString(`<div class="post-body">` + post.Content + `</div>`)
		if len(post.Tags) > 0 {
			b.WriteString(`<ul class="tags">`)
			for _, t := range post.Tags {
				b.WriteString(`<li>` + esc(t) + `</li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</article>`)

		if len(related) > 0 {
			b.WriteString(`<section class="related"><h2>Benzer Yazılar</h2><div class="post-grid">`)
			for _, p := range related {
				writePostCard(b, p)
			}
			b.WriteString(`</div></section>`)
		}

		b.WriteString(`<p class="back-link"><a href="/">← Tüm yazılara dön</a></p>`)
	})
}

// PostNotFound is the dedicated 404 for a missing or unpublished slug.
func PostNotFound(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Yazı Bulunamadı | " + cfg.Name}
	return page(cfg, meta, "", "", func(b *strings.Builder) {
		b.WriteString(`<section class="not-found">`)
		b.WriteString(`<h1>Yazı Bulunamadı</h1>`)
		b.WriteString(`<p>Aradığınız yazı kaldırılmış ya da hiç var olmamış olabilir.</p>`)
		b.WriteString(`<p><a href="/">Ana sayfaya dön</a></p>`)
		b.WriteString(`</section>`)
	})
}
