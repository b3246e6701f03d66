package blogfront

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// consentCookieName is the fixed durable key for the preferences blob.
const consentCookieName = "cookie_consent"

// consentMaxAge keeps the choice for a year before the banner reappears.
const consentMaxAge = 365 * 24 * time.Hour

// CookiePreferences is the visitor's consent choice. Necessary is always
// true and cannot be disabled; the JSON field is kept so the persisted blob
// matches what the banner script reads.
type CookiePreferences struct {
	Necessary  bool `json:"necessary"`
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
	Functional bool `json:"functional"`
}

// ReadPreferences parses the consent cookie. The second return value is
// false when the visitor has not made a choice yet (banner should show).
func ReadPreferences(c echo.Context) (CookiePreferences, bool) {
	cookie, err := c.Cookie(consentCookieName)
	if err != nil {
		return CookiePreferences{Necessary: true}, false
	}
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return CookiePreferences{Necessary: true}, false
	}
	var prefs CookiePreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return CookiePreferences{Necessary: true}, false
	}
	prefs.Necessary = true
	return prefs, true
}

// handleConsentSave persists the visitor's choice. mode is one of
// all, necessary, or custom (custom reads the individual checkboxes).
func (a *App) handleConsentSave(c echo.Context) error {
	prefs := CookiePreferences{Necessary: true}
	switch c.FormValue("mode") {
	case "all":
		prefs.Analytics = true
		prefs.Marketing = true
		prefs.Functional = true
	case "necessary":
		// zero values already right
	default:
		prefs.Analytics = c.FormValue("analytics") != ""
		prefs.Marketing = c.FormValue("marketing") != ""
		prefs.Functional = c.FormValue("functional") != ""
	}

	blob, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	// JSON is not cookie-safe as-is; the blob travels query-escaped.
	c.SetCookie(&http.Cookie{
		Name:     consentCookieName,
		Value:    url.QueryEscape(string(blob)),
		Path:     "/",
		MaxAge:   int(consentMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	})

	back := c.Request().Referer()
	if back == "" || !strings.HasPrefix(back, a.Config.URL) {
		back = "/"
	}
	return c.Redirect(http.StatusSeeOther, back)
}
