package views

import (
	"strings"

	"github.com/a-h/templ"
)

// NotFound is the site-wide 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Sayfa Bulunamadı | " + cfg.Name}
	return page(cfg, meta, "", "", func(b *strings.Builder) {
		b.WriteString(`<section class="not-found">`)
		b.WriteString(`<h1>404</h1>`)
		b.WriteString(`<p>Aradığınız sayfa bulunamadı.</p>`)
		b.WriteString(`<p><a href="/">Ana sayfaya dön</a></p>`)
		b.WriteString(`</section>`)
	})
}

// ServerError is shown for any 5xx the error handler catches.
func ServerError(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Bir Hata Oluştu | " + cfg.Name}
	return page(cfg, meta, "", "", func(b *strings.Builder) {
		b.WriteString(`<section class="server-error">`)
		b.WriteString(`<h1>Bir hata oluştu</h1>`)
		b.WriteString(`<p>Lütfen daha sonra tekrar deneyin.</p>`)
		b.WriteString(`<p><a href="/">Ana sayfaya dön</a></p>`)
		b.WriteString(`</section>`)
	})
}
