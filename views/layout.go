package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// renderFunc adapts a builder function to templ's render signature.
func renderFunc(build func(b *strings.Builder)) func(ctx context.Context, w io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	}
}

// page assembles the public page shell around a body builder: head with SEO
// metadata, navigation, toast, cookie banner, and footer.
func page(cfg SiteConfig, meta PageMeta, jsonLD, toast string, body func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(renderFunc(func(b *strings.Builder) {
		writeHead(b, cfg, meta, jsonLD)
		b.WriteString(`<body>`)
		writeNav(b, cfg)
		b.WriteString(`<main class="site-main">`)
		body(b)
		b.WriteString(`</main>`)
		writeToast(b, toast)
		writeConsentBanner(b)
		writeFooter(b, cfg)
		b.WriteString(`<script src="/public/consent.js" defer></script>`)
		b.WriteString(`<script src="/public/analytics.js" defer></script>`)
		b.WriteString(`</body></html>`)
	}))
}

// adminPage is the stripped shell for the panel: no public nav, no consent
// banner, no beacon.
func adminPage(cfg SiteConfig, title, csrf string, body func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(renderFunc(func(b *strings.Builder) {
		writeHead(b, cfg, PageMeta{Title: title + " | " + cfg.Name}, "")
		b.WriteString(`<body class="admin">`)
		writeAdminNav(b, cfg, csrf)
		b.WriteString(`<main class="admin-main">`)
		body(b)
		b.WriteString(`</main></body></html>`)
	}))
}

func writeHead(b *strings.Builder, cfg SiteConfig, meta PageMeta, jsonLD string) {
	title := meta.Title
	if title == "" {
		title = cfg.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = cfg.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	b.WriteString(`<!DOCTYPE html><html lang="tr"><head><meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	b.WriteString(`<title>` + esc(title) + `</title>`)
	if desc != "" {
		b.WriteString(`<meta name="description" content="` + esc(desc) + `"/>`)
	}
	if meta.URL != "" {
		b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
		b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
	}
	b.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
	if desc != "" {
		b.WriteString(`<meta property="og:description" content="` + esc(desc) + `"/>`)
	}
	b.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
	b.WriteString(`<meta property="og:site_name" content="` + esc(cfg.Name) + `"/>`)
	b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
	b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(cfg.Name) + `" href="/feed.xml"/>`)
	b.WriteString(`<link rel="stylesheet" href="/public/style.css"/>`)
	if jsonLD != "" {
		b.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
	}
	b.WriteString(`</head>`)
}

func writeNav(b *strings.Builder, cfg SiteConfig) {
	b.WriteString(`<header class="site-header"><nav class="site-nav">`)
	b.WriteString(`<a class="brand" href="/">` + esc(cfg.Name) + `</a>`)
	b.WriteString(`<ul>`)
	b.WriteString(`<li><a href="/">Ana Sayfa</a></li>`)
	b.WriteString(`<li><a href="/about/">Hakkımda</a></li>`)
	b.WriteString(`<li><a href="/contact/">İletişim</a></li>`)
	b.WriteString(`</ul></nav></header>`)
}

func writeAdminNav(b *strings.Builder, cfg SiteConfig, csrf string) {
	b.WriteString(`<header class="admin-header"><nav class="admin-nav">`)
	b.WriteString(`<a class="brand" href="/admin/">` + esc(cfg.Name) + ` · Yönetim</a>`)
	b.WriteString(`<ul>`)
	b.WriteString(`<li><a href="/admin/">Yazılar</a></li>`)
	b.WriteString(`<li><a href="/admin/images/">Görseller</a></li>`)
	b.WriteString(`<li><a href="/admin/stats/">İstatistikler</a></li>`)
	b.WriteString(`<li><a href="/" target="_blank">Siteyi Gör</a></li>`)
	b.WriteString(`</ul>`)
	b.WriteString(`<form method="post" action="/admin/logout/">`)
	writeCsrfField(b, csrf)
	b.WriteString(`<button type="submit" class="btn-logout">Çıkış Yap</button></form>`)
	b.WriteString(`</nav></header>`)
}

func writeFooter(b *strings.Builder, cfg SiteConfig) {
	b.WriteString(`<footer class="site-footer"><p>© ` + esc(cfg.Name) + `</p></footer>`)
}

// writeToast emits a one-shot message bar; pages pass the popped flash here.
func writeToast(b *strings.Builder, toast string) {
	if toast == "" {
		return
	}
	b.WriteString(`<div id="toast" class="toast" role="status">` + esc(toast) + `</div>`)
}

// writeConsentBanner emits the cookie banner hidden; consent.js unhides it
// when no cookie_consent cookie is present.
func writeConsentBanner(b *strings.Builder) {
	b.WriteString(`<div id="cookie-consent" class="cookie-consent" hidden>`)
	b.WriteString(`<p>Bu site, deneyiminizi iyileştirmek için çerezler kullanır. Zorunlu çerezler her zaman etkindir.</p>`)
	b.WriteString(`<form method="post" action="/consent/">`)
	b.WriteString(`<div id="consent-settings" hidden>`)
	b.WriteString(`<label><input type="checkbox" checked disabled/> Zorunlu</label>`)
	b.WriteString(`<label><input type="checkbox" name="analytics" value="1"/> Analitik</label>`)
	b.WriteString(`<label><input type="checkbox" name="marketing" value="1"/> Pazarlama</label>`)
	b.WriteString(`<label><input type="checkbox" name="functional" value="1"/> İşlevsel</label>`)
	b.WriteString(`<button type="submit" name="mode" value="custom">Seçimi Kaydet</button>`)
	b.WriteString(`</div>`)
	b.WriteString(`<button type="submit" name="mode" value="all">Tümünü Kabul Et</button>`)
	b.WriteString(`<button type="submit" name="mode" value="necessary">Sadece Zorunlu</button>`)
	b.WriteString(`<button type="button" id="consent-settings-toggle">Ayarlar</button>`)
	b.WriteString(`</form></div>`)
}

func writeCsrfField(b *strings.Builder, csrf string) {
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrf) + `"/>`)
}
