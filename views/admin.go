package views

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/zirvehikayem/blogfront/analytics"
	"github.com/zirvehikayem/blogfront/api"
)

// AdminLogin is the password gate. It doubles as the guard's response for
// unauthenticated panel requests, so errMsg may be empty.
func AdminLogin(cfg SiteConfig, errMsg, csrf string) templ.Component {
	return templ.ComponentFunc(renderFunc(func(b *strings.Builder) {
		writeHead(b, cfg, PageMeta{Title: "Giriş | " + cfg.Name}, "")
		b.WriteString(`<body class="admin login">`)
		b.WriteString(`<main class="login-box">`)
		b.WriteString(`<h1>Yönetici Girişi</h1>`)
		if errMsg != "" {
			b.WriteString(`<p class="error" role="alert">` + esc(errMsg) + `</p>`)
		}
		b.WriteString(`<form method="post" action="/admin/login/">`)
		writeCsrfField(b, csrf)
		b.WriteString(`<label>Kullanıcı Adı<input type="text" name="username" autocomplete="username" required/></label>`)
		b.WriteString(`<label>Şifre<input type="password" name="password" autocomplete="current-password" required/></label>`)
		b.WriteString(`<button type="submit">Giriş Yap</button>`)
		b.WriteString(`</form>`)
		b.WriteString(`<p class="hint">Demo: admin / admin123</p>`)
		b.WriteString(`</main></body></html>`)
	}))
}

// AdminDashboard lists every post with edit and delete actions plus an empty
// editor for new posts. The list is always the backend's fresh copy.
func AdminDashboard(cfg SiteConfig, user *api.UserProfile, posts []api.Post, msg, csrf string) templ.Component {
	return adminPage(cfg, "Yazılar", csrf, func(b *strings.Builder) {
		if user != nil {
			b.WriteString(`<p class="whoami">` + esc(user.FullName) + ` (` + esc(user.Role) + `)</p>`)
		}
		if msg != "" {
			b.WriteString(`<div id="toast" class="toast" role="status">` + esc(msg) + `</div>`)
		}

		b.WriteString(`<section class="editor"><h2>Yeni Yazı</h2>`)
		writePostEditor(b, PostForm{}, csrf)
		b.WriteString(`</section>`)

		b.WriteString(`<section class="post-list"><h2>Yazılar (` + strconv.Itoa(len(posts)) + `)</h2>`)
		if len(posts) == 0 {
			b.WriteString(`<p class="empty">Henüz yazı yok.</p>`)
		} else {
			b.WriteString(`<table><thead><tr><th>Başlık</th><th>Kategori</th><th>Tarih</th><th></th></tr></thead><tbody>`)
			for _, p := range posts {
				b.WriteString(`<tr>`)
				b.WriteString(`<td><a href="/post/` + esc(url.PathEscape(p.Slug)) + `/" target="_blank">` + esc(p.Title) + `</a>`)
				if p.Featured {
					b.WriteString(` <span class="badge">Öne Çıkan</span>`)
				}
				b.WriteString(`</td>`)
				b.WriteString(`<td>` + esc(p.Category) + `</td>`)
				b.WriteString(`<td>` + esc(FormatDate(p.PublishDate)) + `</td>`)
				b.WriteString(`<td class="actions">`)
				b.WriteString(`<a class="btn" href="/admin/post/` + esc(url.PathEscape(p.ID)) + `/">Düzenle</a>`)
				b.WriteString(`<form method="post" action="/admin/post/` + esc(url.PathEscape(p.ID)) + `/delete/" onsubmit="return confirm('` + jsString(p.Title) + ` silinsin mi?')">`)
				writeCsrfField(b, csrf)
				b.WriteString(`<button type="submit" class="btn-danger">Sil</button></form>`)
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)
	})
}

// AdminForm is the edit page for an existing post.
func AdminForm(cfg SiteConfig, form PostForm, csrf string) templ.Component {
	return adminPage(cfg, "Yazıyı Düzenle", csrf, func(b *strings.Builder) {
		b.WriteString(`<section class="editor"><h2>Yazıyı Düzenle</h2>`)
		writePostEditor(b, form, csrf)
		b.WriteString(`<p><a href="/admin/">← Listeye dön</a></p>`)
		b.WriteString(`</section>`)
	})
}

// writePostEditor emits the shared create/edit form. The submit button
// disables itself so a slow save cannot double-post.
func writePostEditor(b *strings.Builder, form PostForm, csrf string) {
	b.WriteString(`<form method="post" action="/admin/save/" onsubmit="this.querySelector('button[type=submit]').disabled=true">`)
	writeCsrfField(b, csrf)
	b.WriteString(`<input type="hidden" name="id" value="` + esc(form.ID) + `"/>`)
	b.WriteString(`<label>Başlık<input type="text" name="title" value="` + esc(form.Title) + `" required/></label>`)
	b.WriteString(`<label>Özet<input type="text" name="excerpt" value="` + esc(form.Excerpt) + `" required/></label>`)
	b.WriteString(`<label>İçerik<textarea name="content" rows="14" required>` + esc(form.Content) + `</textarea></label>`)
	b.WriteString(`<label>Kategori<input type="text" name="category" value="` + esc(form.Category) + `" required/></label>`)
	b.WriteString(`<label>Etiketler<input type="text" name="tags" value="` + esc(form.Tags) + `" placeholder="virgülle ayırın"/></label>`)
	checked := ""
	if form.Featured {
		checked = " checked"
	}
	b.WriteString(`<label class="checkbox"><input type="checkbox" name="featured" value="1"` + checked + `/> Öne çıkar</label>`)
	label := "Yayınla"
	if form.ID != "" {
		label = "Güncelle"
	}
	b.WriteString(`<button type="submit">` + label + `</button>`)
	b.WriteString(`</form>`)
}

// AdminImages is the upload manager for post images.
func AdminImages(cfg SiteConfig, images []Image, csrf string) templ.Component {
	return adminPage(cfg, "Görseller", csrf, func(b *strings.Builder) {
		b.WriteString(`<section class="images"><h2>Görseller (` + strconv.Itoa(len(images)) + `)</h2>`)
		b.WriteString(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`)
		writeCsrfField(b, csrf)
		b.WriteString(`<input type="file" name="image" accept="image/*" required/>`)
		b.WriteString(`<button type="submit">Yükle</button>`)
		b.WriteString(`</form>`)
		if len(images) == 0 {
			b.WriteString(`<p class="empty">Henüz görsel yok.</p>`)
		} else {
			b.WriteString(`<table><thead><tr><th>Dosya</th><th>Boyut</th><th>Tarih</th><th></th></tr></thead><tbody>`)
			for _, img := range images {
				src := "/public/uploads/" + url.PathEscape(img.Filename)
				b.WriteString(`<tr>`)
				b.WriteString(`<td><a href="` + esc(src) + `" target="_blank">` + esc(img.Filename) + `</a></td>`)
				b.WriteString(`<td>` + FormatSize(img.Size) + `</td>`)
				b.WriteString(`<td>` + esc(img.UploadedAt.Format("02.01.2006 15:04")) + `</td>`)
				b.WriteString(`<td><form method="post" action="/admin/images/` + esc(url.PathEscape(img.Filename)) + `/delete/" onsubmit="return confirm('` + jsString(img.Filename) + ` silinsin mi?')">`)
				writeCsrfField(b, csrf)
				b.WriteString(`<button type="submit" class="btn-danger">Sil</button></form></td>`)
				b.WriteString(`</tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)
	})
}

// AdminStats shows the last 30 days of consented page views.
func AdminStats(cfg SiteConfig, stats analytics.Stats, csrf string) templ.Component {
	return adminPage(cfg, "İstatistikler", csrf, func(b *strings.Builder) {
		b.WriteString(`<section class="stats"><h2>Son ` + strconv.Itoa(stats.Days) + ` Gün</h2>`)
		b.WriteString(`<dl class="totals">`)
		b.WriteString(`<dt>Tekil Ziyaretçi</dt><dd>` + strconv.Itoa(stats.UniqueVisitors) + `</dd>`)
		b.WriteString(`<dt>Görüntülenme</dt><dd>` + strconv.Itoa(stats.TotalViews) + `</dd>`)
		b.WriteString(`</dl>`)

		if len(stats.TopPages) > 0 {
			b.WriteString(`<h3>En Çok Okunanlar</h3><table><tbody>`)
			for _, p := range stats.TopPages {
				b.WriteString(`<tr><td>` + esc(p.Path) + `</td><td>` + strconv.Itoa(p.Views) + `</td></tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		if len(stats.DailyViews) > 0 {
			b.WriteString(`<h3>Günlük</h3><table><tbody>`)
			for _, d := range stats.DailyViews {
				b.WriteString(`<tr><td>` + esc(d.Date) + `</td><td>` + strconv.Itoa(d.Views) + `</td></tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)
	})
}

// jsString makes a value safe inside a single-quoted JS string that itself
// lives in an HTML attribute.
func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return esc(s)
}
