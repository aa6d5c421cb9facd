package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linderopos/internal/config"
	"linderopos/internal/middleware"
	"linderopos/internal/service"
	"linderopos/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the real session store, gate and handlers the way the
// router does, with stub pages and a cookie jar acting as the browser.
type testApp struct {
	t       *testing.T
	r       *gin.Engine
	st      *store.MemoryStore
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{PIN: "0102", PINLength: 4, SessionSecret: "test-secret"}
	st := store.NewMemoryStore()

	r := gin.New()
	r.Use(sessions.Sessions("pos_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	routes := middleware.NewRouteTable()
	r.Use(middleware.SessionGate(routes))

	authH := NewAuthHandler(service.NewAuthService(cfg))
	seedH := NewSeedHandler(service.NewSeedService(st))

	register := func(method, path string, access middleware.Access, h gin.HandlerFunc) {
		routes.Register(path, access)
		r.Handle(method, path, h)
	}
	register(http.MethodGet, "/", middleware.AccessOpen, func(c *gin.Context) { c.String(http.StatusOK, "login") })
	register(http.MethodPost, "/verify-pin", middleware.AccessOpen, authH.VerifyPIN)
	register(http.MethodGet, "/logout", middleware.AccessOpen, authH.Logout)
	register(http.MethodGet, "/panel", middleware.AccessProtected, func(c *gin.Context) { c.String(http.StatusOK, "panel") })
	register(http.MethodGet, "/seed", middleware.AccessProtected, seedH.Run)
	// Test-only helpers to observe session contents
	register(http.MethodGet, "/mark", middleware.AccessOpen, func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("stale", "leftover")
		require.NoError(t, sess.Save())
		c.String(http.StatusOK, "ok")
	})
	register(http.MethodGet, "/stale", middleware.AccessOpen, func(c *gin.Context) {
		if sessions.Default(c).Get("stale") == nil {
			c.String(http.StatusOK, "clean")
			return
		}
		c.String(http.StatusOK, "stale")
	})

	require.NoError(t, routes.Verify(r.Routes()))
	return &testApp{t: t, r: r, st: st, cookies: make(map[string]*http.Cookie)}
}

func (a *testApp) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		a.cookies[c.Name] = c
	}
	return w
}

func (a *testApp) verifyPIN(pin string) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, "/verify-pin", gin.H{"pin": pin})
}

// ── Tests: PIN verification ───────────────────────────────────────────────────

func TestVerifyPIN_ShortPIN_400WithLength(t *testing.T) {
	app := newTestApp(t)

	w := app.verifyPIN("12")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "4 dígitos")
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestVerifyPIN_WrongPIN_401Generic(t *testing.T) {
	app := newTestApp(t)

	w := app.verifyPIN("9999")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "PIN incorrecto")

	// no partial grant — the panel stays gated
	panel := app.do(http.MethodGet, "/panel", nil)
	assert.Equal(t, http.StatusFound, panel.Code)
	assert.Equal(t, "/", panel.Header().Get("Location"))
}

func TestVerifyPIN_MalformedJSON_400(t *testing.T) {
	app := newTestApp(t)

	req, _ := http.NewRequest(http.MethodPost, "/verify-pin", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "4 dígitos")
}

func TestVerifyPIN_Correct_GrantsSession(t *testing.T) {
	app := newTestApp(t)

	w := app.verifyPIN("0102")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["ok"])

	panel := app.do(http.MethodGet, "/panel", nil)
	assert.Equal(t, http.StatusOK, panel.Code)
	assert.Equal(t, "panel", panel.Body.String())
}

func TestVerifyPIN_ClearsPriorSessionState(t *testing.T) {
	app := newTestApp(t)

	app.do(http.MethodGet, "/mark", nil)
	stale := app.do(http.MethodGet, "/stale", nil)
	require.Equal(t, "stale", stale.Body.String())

	require.Equal(t, http.StatusOK, app.verifyPIN("0102").Code)

	clean := app.do(http.MethodGet, "/stale", nil)
	assert.Equal(t, "clean", clean.Body.String(), "prior markers must be cleared on grant")
}

func TestVerifyPIN_SessionCookieIsNonPersistent(t *testing.T) {
	app := newTestApp(t)

	w := app.verifyPIN("0102")
	require.Equal(t, http.StatusOK, w.Code)

	var sessCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "pos_session" {
			sessCookie = c
		}
	}
	require.NotNil(t, sessCookie)
	assert.Equal(t, 0, sessCookie.MaxAge, "cookie must expire with the browser session")
	assert.True(t, sessCookie.Expires.IsZero())
}

// ── Tests: gate over the real routes ──────────────────────────────────────────

func TestPanel_WithoutSession_RedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/panel", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLogout_ClearsSession(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, http.StatusOK, app.verifyPIN("0102").Code)
	require.Equal(t, http.StatusOK, app.do(http.MethodGet, "/panel", nil).Code)

	logout := app.do(http.MethodGet, "/logout", nil)
	assert.Equal(t, http.StatusFound, logout.Code)
	assert.Equal(t, "/", logout.Header().Get("Location"))

	panel := app.do(http.MethodGet, "/panel", nil)
	assert.Equal(t, http.StatusFound, panel.Code)
}
