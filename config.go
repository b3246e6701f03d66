package blogfront

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// SiteConfig holds all configuration for the site, loaded from environment
// variables. The backend REST API is an external collaborator; everything
// this binary serves is fetched from BACKEND_URL.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Zirve Hikayem"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	Description string `env:"SITE_DESCRIPTION"`
	Author      string `env:"SITE_AUTHOR"`

	Addr       string `env:"ADDR" envDefault:":3000"`
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:8000"`

	// RequestTimeout bounds every call to the backend API.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	SessionSecret string `env:"SESSION_SECRET"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`

	AnalyticsEnabled      bool   `env:"ANALYTICS_ENABLED" envDefault:"true"`
	AnalyticsDatabasePath string `env:"ANALYTICS_DB_PATH" envDefault:"data/analytics.db"`
}

// LoadConfig reads SiteConfig from the environment and applies guardrails.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("blogfront: parse config: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize normalizes values loaded from the environment.
func (c *SiteConfig) Sanitize() {
	c.URL = strings.TrimSuffix(c.URL, "/")
	c.BackendURL = strings.TrimSuffix(c.BackendURL, "/")
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
}

// Validate checks the fields that have no usable default.
func (c *SiteConfig) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("blogfront: SESSION_SECRET is required")
	}
	if c.BackendURL == "" {
		return fmt.Errorf("blogfront: BACKEND_URL is required")
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
