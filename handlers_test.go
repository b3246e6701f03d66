package blogfront

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zirvehikayem/blogfront/api"
)

func samplePosts() []api.Post {
	return []api.Post{
		{
			ID: "1", Title: "Zirveye Giden Yol", Slug: "zirveye-giden-yol",
			Excerpt: "Bir tırmanış hikayesi", Content: "İlk gün<br>hava açıktı.",
			Author: "Yönetici", PublishDate: "2026-01-15", Category: "Kişisel Gelişim",
			Tags: []string{"dağcılık", "motivasyon"}, ReadTime: "5 dk", Featured: true,
		},
		{
			ID: "2", Title: "Go ile Web", Slug: "go-ile-web",
			Excerpt: "Pratik notlar", Content: "Sunucu tarafı.",
			Author: "Yönetici", PublishDate: "2026-02-01", Category: "Teknoloji",
		},
		{
			ID: "3", Title: "Kamp Ekipmanları", Slug: "kamp-ekipmanlari",
			Excerpt: "Liste", Content: "Çadır, mat, uyku tulumu.",
			Author: "Yönetici", PublishDate: "2026-03-10", Category: "Kişisel Gelişim",
		},
	}
}

func TestHomeRendersFeedAndCategories(t *testing.T) {
	backend := newFakeBackend(samplePosts()...).server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Zirveye Giden Yol")
	assert.Contains(t, body, "Go ile Web")
	assert.Contains(t, body, "Öne Çıkanlar")
	assert.Contains(t, body, api.CategoryAll)
	assert.Contains(t, body, "Teknoloji")
	assert.Contains(t, body, "15 Ocak 2026")
}

func TestHomeCategoryFilter(t *testing.T) {
	backend := newFakeBackend(samplePosts()...).server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/?category=Teknoloji")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Go ile Web")
	assert.NotContains(t, body, "Kamp Ekipmanları")
}

func TestHomeSurvivesBackendOutage(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close() // connection refused from here on

	app := newTestApp(t, dead.URL)
	b := newBrowser(t, app)

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), api.NetworkErrorMessage)
}

func TestPostPageShowsRelatedFromSameCategory(t *testing.T) {
	backend := newFakeBackend(samplePosts()...).server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/post/zirveye-giden-yol/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// Raw content flows through; the article itself is excluded from the
	// related strip, cross-category posts never appear in it.
	assert.Contains(t, body, "İlk gün<br>hava açıktı.")
	assert.Contains(t, body, "Benzer Yazılar")
	assert.Contains(t, body, "Kamp Ekipmanları")
	assert.NotContains(t, body, "Go ile Web")
}

func TestPostPageUnknownSlug(t *testing.T) {
	backend := newFakeBackend(samplePosts()...).server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/post/olmayan-yazi/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Yazı Bulunamadı")
}

func TestAboutPage(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/about/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kişisel blog")
}

func TestContactSubmitShowsBackendAck(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	form := url.Values{
		"name":    {"Ayşe"},
		"email":   {"ayse@example.com"},
		"message": {"Merhaba"},
	}
	rec := b.post("/contact/", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = b.get("/contact/")
	assert.Contains(t, rec.Body.String(), "Mesajınız alındı. Teşekkürler!")
}

func TestContactSubmitValidatesRequiredFields(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.post("/contact/", url.Values{"name": {"Ayşe"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = b.get("/contact/")
	assert.Contains(t, rec.Body.String(), "Lütfen zorunlu alanları doldurun.")
}

func TestToastShowsOnlyOnce(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	b.post("/contact/", url.Values{"name": {"Ayşe"}})

	rec := b.get("/contact/")
	require.Contains(t, rec.Body.String(), "Lütfen zorunlu alanları doldurun.")

	rec = b.get("/contact/")
	assert.NotContains(t, rec.Body.String(), "Lütfen zorunlu alanları doldurun.")
}

func TestFeedAndSitemap(t *testing.T) {
	backend := newFakeBackend(samplePosts()...).server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<rss")
	assert.Contains(t, rec.Body.String(), "http://localhost:3000/post/zirveye-giden-yol/")

	rec = b.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http://localhost:3000/about/")
	assert.Contains(t, rec.Body.String(), "http://localhost:3000/post/go-ile-web/")
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/boyle-bir-sayfa-yok/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Aradığınız sayfa bulunamadı.")
}
