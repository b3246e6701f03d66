// Package blogfront is the web frontend for the Zirve Hikayem blog: the
// public site (home feed, single posts, about, contact), a password-gated
// admin panel for managing posts, and a cookie-consent/analytics layer.
// All content lives in an external REST backend; this binary renders it
// and never keeps its own copy of the truth.
package blogfront

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zirvehikayem/blogfront/analytics"
	"github.com/zirvehikayem/blogfront/api"
	"github.com/zirvehikayem/blogfront/views"
)

// App wires together the API client, session manager, consent layer,
// analytics store, middleware, and routes.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	API      *api.Client
	Sessions *SessionManager

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates the App. Start must be called to serve.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.Sanitize()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		API:       api.NewClient(cfg.BackendURL, api.WithTimeout(cfg.RequestTimeout)),
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start validates configuration, wires middleware and routes, and serves.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// setup wires everything short of listening, so tests can drive the router
// directly.
func (a *App) setup() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.Sessions = NewSessionManager(a.API, a.loginLimiter)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("blogfront: init analytics: %w", err)
		}
		a.analyticsStore = store
		if err := analytics.InitSalt(store); err != nil {
			return fmt.Errorf("blogfront: init analytics salt: %w", err)
		}
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/public/consent.js", echo.WrapHandler(embeddedAssetHandler()))
	e.GET("/public/analytics.js", echo.WrapHandler(embeddedAssetHandler()))
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/post/:slug/", a.handlePost)
	e.GET("/about/", a.handleAbout)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
	e.GET("/login/", a.handleLoginPage)

	// Cookie consent
	e.POST("/consent/", a.handleConsentSave)

	// Admin panel: login/logout stay outside the guard, everything else
	// re-verifies the session on each request.
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", a.handleAdminLogout)
	admin := e.Group("/admin", a.requireSession)
	admin.GET("/", a.handleAdmin)
	admin.GET("/post/:id/", a.handleAdminEdit)
	admin.POST("/save/", a.handleAdminSave)
	admin.POST("/post/:id/delete/", a.handleAdminDelete)
	admin.GET("/images/", a.handleImageList)
	admin.POST("/images/upload/", a.handleImageUpload)
	admin.POST("/images/:filename/delete/", a.handleImageDelete)

	// Analytics collection, gated on the visitor's consent.
	if a.analyticsStore != nil {
		handler := analytics.NewHandler(a.analyticsStore)
		e.POST("/api/analytics/collect/", func(c echo.Context) error {
			if prefs, _ := ReadPreferences(c); !prefs.Analytics {
				return c.NoContent(http.StatusNoContent)
			}
			return handler.Collect(c)
		})
		admin.GET("/stats/", func(c echo.Context) error {
			stats, err := a.analyticsStore.Stats(30)
			if err != nil {
				return err
			}
			return Render(c, views.AdminStats(a.Config.site(), stats, CsrfToken(c)))
		})
	}
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// site converts the config into the subset the views need.
func (c SiteConfig) site() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using SITE_URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}
