package blogfront

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresLogin(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.get("/admin/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Yönetici Girişi")
	assert.NotContains(t, rec.Body.String(), "Yazılar (")
}

func TestLoginPersistsSessionAcrossRequests(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	b.login()
	require.NotNil(t, b.cookies[sessionName], "login must set the session cookie")

	// A fresh request with the cookie reaches the dashboard, greeting first.
	rec := b.get("/admin/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hoş geldiniz, Site Yöneticisi!")
	assert.Contains(t, rec.Body.String(), "Site Yöneticisi (admin)")
}

func TestBadLoginLeavesNoSession(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	rec := b.post("/admin/login/", url.Values{"username": {"admin"}, "password": {"yanlis"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hatalı kullanıcı adı veya şifre")

	rec = b.get("/admin/")
	assert.Contains(t, rec.Body.String(), "Yönetici Girişi")
}

func TestLoginRateLimited(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	bad := url.Values{"username": {"admin"}, "password": {"yanlis"}}
	for i := 0; i < 5; i++ {
		rec := b.post("/admin/login/", bad)
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i)
	}
	rec := b.post("/admin/login/", bad)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// The limiter counts failures, not requests, so it must also block a
	// now-correct password from the same address.
	rec = b.post("/admin/login/", url.Values{"username": {"admin"}, "password": {"admin123"}})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	b.login()
	rec := b.post("/admin/logout/", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = b.get("/admin/")
	assert.Contains(t, rec.Body.String(), "Yönetici Girişi")
}

func TestStaleTokenIsDiscarded(t *testing.T) {
	fb := newFakeBackend()
	backend := fb.server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	b.login()

	// Invalidate the token server-side; the next verify must fail and the
	// guard must fall back to the login page.
	fb.mu.Lock()
	fb.token = "rotated"
	fb.mu.Unlock()

	rec := b.get("/admin/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Yönetici Girişi")
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	backend := newFakeBackend().server(t)
	app := newTestApp(t, backend.URL)
	b := newBrowser(t, app)

	b.login()
	rec := b.get("/login/")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/", rec.Header().Get("Location"))
}
