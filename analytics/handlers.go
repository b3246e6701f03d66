package analytics

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	maxPathLen      = 2048
	maxReferrerLen  = 2048
	maxUserAgentLen = 512
	maxScreenLen    = 32
)

// Handler serves the page-view collect endpoint.
type Handler struct {
	store   *Store
	limiter *rateLimiter
}

// NewHandler creates an analytics handler backed by the given store.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store:   store,
		limiter: newRateLimiter(60, time.Minute),
	}
}

// CollectRequest is the beacon payload sent from the client script.
type CollectRequest struct {
	Path       string `json:"path"`
	Referrer   string `json:"referrer"`
	ScreenSize string `json:"screen_size"`
	UserAgent  string `json:"user_agent"`
}

// Collect records one page view. Consent is checked by the route that
// mounts this handler; here we only honor Do Not Track and basic limits.
func (h *Handler) Collect(c echo.Context) error {
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	ip := c.RealIP()
	if !h.limiter.allow(ip) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	var req CollectRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if req.Path == "" || len(req.Path) > maxPathLen || req.Path[0] != '/' {
		return c.NoContent(http.StatusBadRequest)
	}
	if len(req.Referrer) > maxReferrerLen || len(req.ScreenSize) > maxScreenLen {
		return c.NoContent(http.StatusBadRequest)
	}
	ua := req.UserAgent
	if ua == "" {
		ua = c.Request().UserAgent()
	}
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen]
	}

	visit := &Visit{
		VisitorID: GenerateVisitorID(ip, ua),
		SessionID: sessionID(c, ip, ua),
		IPHash:    HashIP(ip),
		Path:      req.Path,
		Referrer:  req.Referrer,
		UserAgent: ua,
		Timestamp: time.Now().UTC(),
	}
	if err := h.store.SaveVisit(visit); err != nil {
		c.Logger().Errorf("analytics: save visit: %v", err)
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}

const sessionCookie = "va_session"

// sessionID groups page views into a browser session via a short-lived
// cookie. The value is random, not derived from the visitor.
func sessionID(c echo.Context, ip, ua string) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   30 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
