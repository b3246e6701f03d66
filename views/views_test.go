package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zirvehikayem/blogfront/api"
)

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, cmp.Render(context.Background(), &b))
	return b.String()
}

var testSite = SiteConfig{
	Name:        "Zirve Hikayem",
	URL:         "http://localhost:3000",
	Description: "Kişisel blog",
	Author:      "Yönetici",
}

func TestHomeMarksActiveCategory(t *testing.T) {
	cats := []string{api.CategoryAll, "Teknoloji", "Kişisel Gelişim"}

	out := renderToString(t, Home(testSite, nil, nil, cats, "Teknoloji", ""))
	assert.Contains(t, out, `class="pill active" href="/?category=Teknoloji"`)
	assert.Contains(t, out, `class="pill" href="/"`)
	assert.Contains(t, out, "Henüz yazı yok.")

	// No explicit selection means the catch-all pill is active.
	out = renderToString(t, Home(testSite, nil, nil, cats, "", ""))
	assert.Contains(t, out, `class="pill active" href="/"`)
}

func TestHomeEscapesUntrustedFields(t *testing.T) {
	posts := []api.Post{{
		Title:    `<script>alert(1)</script>`,
		Slug:     "x",
		Excerpt:  "ok",
		Category: "Teknoloji",
	}}
	out := renderToString(t, Home(testSite, posts, nil, nil, "", ""))
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestPostRendersContentVerbatim(t *testing.T) {
	post := api.Post{
		Title:       "Deneme",
		Slug:        "deneme",
		Content:     "Bir satır<br>iki satır",
		Category:    "Teknoloji",
		PublishDate: "2026-03-10",
	}
	out := renderToString(t, Post(testSite, post, nil, ""))

	assert.Contains(t, out, "Bir satır<br>iki satır")
	assert.Contains(t, out, "10 Mart 2026")
	assert.Contains(t, out, `"@type":"BlogPosting"`)
}

func TestToastOnlyWhenPresent(t *testing.T) {
	out := renderToString(t, Home(testSite, nil, nil, nil, "", "Kaydedildi!"))
	assert.Contains(t, out, `id="toast"`)
	assert.Contains(t, out, "Kaydedildi!")

	out = renderToString(t, Home(testSite, nil, nil, nil, "", ""))
	assert.NotContains(t, out, `id="toast"`)
}

func TestAdminLoginShowsDemoHintAndError(t *testing.T) {
	out := renderToString(t, AdminLogin(testSite, "", "tok"))
	assert.Contains(t, out, "Demo: admin / admin123")
	assert.NotContains(t, out, `class="error"`)

	out = renderToString(t, AdminLogin(testSite, "Hatalı şifre", "tok"))
	assert.Contains(t, out, "Hatalı şifre")
	assert.Contains(t, out, `name="_csrf" value="tok"`)
}

func TestAdminDashboardConfirmNamesThePost(t *testing.T) {
	posts := []api.Post{{ID: "7", Title: "Silinecek Yazı", Slug: "silinecek"}}
	out := renderToString(t, AdminDashboard(testSite, &api.UserProfile{FullName: "Yönetici", Role: "admin"}, posts, "", "tok"))

	assert.Contains(t, out, "Silinecek Yazı silinsin mi?")
	assert.Contains(t, out, `action="/admin/post/7/delete/"`)
}

func TestPostEditorPrefillAndBusyGuard(t *testing.T) {
	form := PostForm{ID: "3", Title: "Var Olan", Tags: "a, b", Featured: true}
	out := renderToString(t, AdminForm(testSite, form, "tok"))

	assert.Contains(t, out, `value="Var Olan"`)
	assert.Contains(t, out, `value="a, b"`)
	assert.Contains(t, out, "checked")
	assert.Contains(t, out, "Güncelle")
	assert.Contains(t, out, "disabled=true")

	out = renderToString(t, AdminForm(testSite, PostForm{}, "tok"))
	assert.Contains(t, out, "Yayınla")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 Ocak 2026", FormatDate("2026-01-15"))
	assert.Equal(t, "1 Ağustos 2025", FormatDate("2025-08-01"))
	assert.Equal(t, "yakında", FormatDate("yakında"), "unparseable input passes through")
}
