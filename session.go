package blogfront

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/zirvehikayem/blogfront/api"
	"github.com/zirvehikayem/blogfront/views"
)

const (
	sessionName     = "admin_session"
	sessionTokenKey = "token"
	sessionCtxKey   = "blogfront_session"
)

// Session is the authenticated identity plus bearer credential for the
// current browser. The token stored in the cookie session is the durable
// copy; User and Token here are a per-request cache of it.
type Session struct {
	User  *api.UserProfile
	Token string
}

// Authenticated reports whether both a user and a token are present.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// LoginResult is the outcome of a login attempt. Credential failures are
// reported here, never as a Go error escaping the manager.
type LoginResult struct {
	Success bool
	User    api.UserProfile
	Error   string
}

// SessionManager owns the session lifecycle: it alone reads and writes the
// persisted token, everyone else receives the Session it produces.
type SessionManager struct {
	api     *api.Client
	limiter *LoginLimiter
}

// NewSessionManager builds a manager backed by the given API client.
func NewSessionManager(client *api.Client, limiter *LoginLimiter) *SessionManager {
	return &SessionManager{api: client, limiter: limiter}
}

// Verify restores the session from the persisted token. No token means
// unauthenticated immediately; a token that fails backend verification is
// discarded so the next request starts clean.
func (m *SessionManager) Verify(c echo.Context) *Session {
	token := m.storedToken(c)
	if token == "" {
		return &Session{}
	}
	user, err := m.api.Verify(c.Request().Context(), token)
	if err != nil {
		c.Logger().Warnf("session verify failed, clearing token: %v", err)
		m.clearToken(c)
		return &Session{}
	}
	return &Session{User: &user, Token: token}
}

// Login exchanges credentials for a token and persists it on success.
// On failure any prior session is left untouched.
func (m *SessionManager) Login(c echo.Context, username, password string) LoginResult {
	resp, err := m.api.Login(c.Request().Context(), username, password)
	if err != nil {
		if m.limiter != nil {
			m.limiter.Record(c.RealIP())
		}
		msg := api.ErrorMessage(err, "Giriş yapılamadı. Lütfen bilgilerinizi kontrol edin.")
		return LoginResult{Success: false, Error: msg}
	}
	if err := m.storeToken(c, resp.AccessToken); err != nil {
		c.Logger().Errorf("persist token: %v", err)
		return LoginResult{Success: false, Error: "Oturum kaydedilemedi."}
	}
	return LoginResult{Success: true, User: resp.User}
}

// Logout best-effort invalidates the token server-side, then unconditionally
// clears the persisted token. A backend failure never blocks local logout.
func (m *SessionManager) Logout(c echo.Context) {
	if token := m.storedToken(c); token != "" {
		if err := m.api.Logout(c.Request().Context(), token); err != nil {
			c.Logger().Warnf("backend logout: %v", err)
		}
	}
	m.clearToken(c)
}

func (m *SessionManager) storedToken(c echo.Context) string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[sessionTokenKey].(string)
	return token
}

func (m *SessionManager) storeToken(c echo.Context, token string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[sessionTokenKey] = token
	return sess.Save(c.Request(), c.Response())
}

func (m *SessionManager) clearToken(c echo.Context) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	delete(sess.Values, sessionTokenKey)
	sess.Options.MaxAge = -1
	_ = sess.Save(c.Request(), c.Response())
}

// requireSession guards admin routes. It renders exactly one of two
// outcomes per request: the login page when the session cannot be
// verified, or the protected handler with the Session in context.
func (a *App) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := a.Sessions.Verify(c)
		if !sess.Authenticated() {
			return Render(c, views.AdminLogin(a.Config.site(), "", CsrfToken(c)))
		}
		c.Set(sessionCtxKey, sess)
		return next(c)
	}
}

// currentSession returns the verified session installed by requireSession.
func currentSession(c echo.Context) *Session {
	sess, _ := c.Get(sessionCtxKey).(*Session)
	if sess == nil {
		return &Session{}
	}
	return sess
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 12,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}
