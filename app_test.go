package blogfront

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zirvehikayem/blogfront/api"
)

// fakeBackend is an in-memory stand-in for the content API. It implements
// just enough of the REST surface for the handlers under test.
type fakeBackend struct {
	mu     sync.Mutex
	posts  []api.Post
	nextID int
	token  string
}

func newFakeBackend(posts ...api.Post) *fakeBackend {
	return &fakeBackend{posts: posts, nextID: 100, token: "tok-test"}
}

func (f *fakeBackend) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		category := r.URL.Query().Get("category")
		out := []api.Post{}
		for _, p := range f.posts {
			if category == "" || p.Category == category {
				out = append(out, p)
			}
		}
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("GET /api/posts/featured", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := []api.Post{}
		for _, p := range f.posts {
			if p.Featured {
				out = append(out, p)
			}
		}
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("GET /api/posts/{slug}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, p := range f.posts {
			if p.Slug == r.PathValue("slug") {
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Post not found"}`))
	})
	mux.HandleFunc("POST /api/posts", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var in api.PostInput
		json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		post := api.Post{
			ID:          strconv.Itoa(f.nextID),
			Title:       in.Title,
			Slug:        strings.ToLower(strings.ReplaceAll(in.Title, " ", "-")),
			Excerpt:     in.Excerpt,
			Content:     in.Content,
			Category:    in.Category,
			Tags:        in.Tags,
			Featured:    in.Featured,
			PublishDate: "2026-08-30",
		}
		f.posts = append(f.posts, post)
		json.NewEncoder(w).Encode(post)
	})
	mux.HandleFunc("PUT /api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var in api.PostInput
		json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, p := range f.posts {
			if p.ID == r.PathValue("id") {
				p.Title = in.Title
				p.Excerpt = in.Excerpt
				p.Content = in.Content
				p.Category = in.Category
				p.Tags = in.Tags
				p.Featured = in.Featured
				f.posts[i] = p
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, p := range f.posts {
			if p.ID == r.PathValue("id") {
				f.posts = append(f.posts[:i], f.posts[i+1:]...)
				w.Write([]byte(`{"message":"Yazı silindi","status":"ok"}`))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		cats := []string{api.CategoryAll}
		seen := map[string]bool{}
		for _, p := range f.posts {
			if !seen[p.Category] {
				seen[p.Category] = true
				cats = append(cats, p.Category)
			}
		}
		json.NewEncoder(w).Encode(cats)
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username, Password string }
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Hatalı kullanıcı adı veya şifre"}`))
			return
		}
		json.NewEncoder(w).Encode(api.LoginResponse{
			AccessToken: f.token,
			TokenType:   "bearer",
			User:        api.UserProfile{Username: "admin", FullName: "Site Yöneticisi", Role: "admin"},
		})
	})
	mux.HandleFunc("POST /api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid token"}`))
			return
		}
		w.Write([]byte(`{"user":{"username":"admin","full_name":"Site Yöneticisi","role":"admin"}}`))
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Çıkış yapıldı","status":"ok"}`))
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Mesajınız alındı. Teşekkürler!","status":"success"}`))
	})
	mux.HandleFunc("GET /api/about", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.About{Title: "Hakkımda", Description: "Kişisel blog"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeBackend) authorized(r *http.Request) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return r.Header.Get("Authorization") == "Bearer "+f.token
}

func newTestApp(t *testing.T, backendURL string) *App {
	t.Helper()
	cfg := SiteConfig{
		Name:             "Zirve Hikayem",
		URL:              "http://localhost:3000",
		Addr:             ":0",
		BackendURL:       backendURL,
		SessionSecret:    "test-secret",
		AnalyticsEnabled: false,
	}
	cfg.Sanitize()

	app := New(cfg, WithStaticDir(t.TempDir()))
	require.NoError(t, app.setup())
	t.Cleanup(func() { app.Close() })
	return app
}

// browser drives the app's router like a cookie-keeping user agent.
type browser struct {
	t       *testing.T
	app     *App
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *App) *browser {
	return &browser{t: t, app: app, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	if method != http.MethodGet {
		if c, ok := b.cookies["_csrf"]; ok {
			req.Header.Set("X-CSRF-Token", c.Value)
		}
	}

	rec := httptest.NewRecorder()
	b.app.Echo.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

// post primes the CSRF cookie with a GET when the browser has none yet.
func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if _, ok := b.cookies["_csrf"]; !ok {
		b.get("/")
	}
	return b.do(http.MethodPost, path, form)
}

// login authenticates the browser as the demo admin.
func (b *browser) login() {
	b.t.Helper()
	rec := b.post("/admin/login/", url.Values{"username": {"admin"}, "password": {"admin123"}})
	require.Equal(b.t, http.StatusSeeOther, rec.Code, "login should redirect: %s", rec.Body.String())
}
