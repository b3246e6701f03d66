package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/zirvehikayem/blogfront/api"
)

// About renders the backend's about-page content block.
func About(cfg SiteConfig, about api.About, toast string) templ.Component {
	meta := PageMeta{
		Title: "Hakkımda | " + cfg.Name,
		URL:   buildURL(cfg.URL, "about"),
	}
	return page(cfg, meta, "", toast, func(b *strings.Builder) {
		b.WriteString(`<section class="about">`)
		b.WriteString(`<h1>` + esc(about.Title) + `</h1>`)
		if about.Subtitle != "" {
			b.WriteString(`<p class="subtitle">` + esc(about.Subtitle) + `</p>`)
		}
		if about.Description != "" {
			b.WriteString(`<p>` + esc(about.Description) + `</p>`)
		}
		if about.Mission != "" {
			b.WriteString(`<h2>Misyon</h2><p>` + esc(about.Mission) + `</p>`)
		}
		if len(about.Values) > 0 {
			b.WriteString(`<h2>Değerler</h2><ul>`)
			for _, v := range about.Values {
				b.WriteString(`<li>` + esc(v) + `</li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</section>`)
	})
}

// Contact renders the contact form. Subject is the only optional field.
func Contact(cfg SiteConfig, toast, csrf string) templ.Component {
	meta := PageMeta{
		Title: "İletişim | " + cfg.Name,
		URL:   buildURL(cfg.URL, "contact"),
	}
	return page(cfg, meta, "", toast, func(b *strings.Builder) {
		b.WriteString(`<section class="contact"><h1>İletişim</h1>`)
		b.WriteString(`<form method="post" action="/contact/">`)
		writeCsrfField(b, csrf)
		b.WriteString(`<label>Ad Soyad<input type="text" name="name" required/></label>`)
		b.WriteString(`<label>E-posta<input type="email" name="email" required/></label>`)
		b.WriteString(`<label>Konu<input type="text" name="subject"/></label>`)
		b.WriteString(`<label>Mesaj<textarea name="message" rows="6" required></textarea></label>`)
		b.WriteString(`<button type="submit">Gönder</button>`)
		b.WriteString(`</form></section>`)
	})
}
