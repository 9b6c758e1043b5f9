package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamdh/gradeview/config"
	authctrl "github.com/lamdh/gradeview/internal/controller/auth"
	"github.com/lamdh/gradeview/internal/fixture"
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/service"
	"github.com/lamdh/gradeview/internal/session"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(fixture.New().Handler())
	t.Cleanup(backend.Close)

	cfg := &config.Config{}
	cfg.Session.Dir = t.TempDir()
	sess, err := session.NewStore(cfg)
	require.NoError(t, err)

	client := gateway.New(gateway.Options{BaseURL: backend.URL}, sess)
	ctrl := authctrl.NewAuthController(service.NewAuthService(client, sess), sess)

	r := gin.New()
	r.POST("/api/v1/auth/login", ctrl.Login)
	r.POST("/api/v1/auth/logout", ctrl.Logout)
	r.GET("/api/v1/auth/me", ctrl.Me)
	return r, sess
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEstablishesSession(t *testing.T) {
	r, sess := newAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/login", `{"email":"teacher@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"role":"teacher"`)

	require.True(t, sess.Authenticated())
	user, found := sess.User()
	require.True(t, found)
	assert.Equal(t, "teacher@example.com", user.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, sess := newAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/login", `{"email":"teacher@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.False(t, sess.Authenticated())
}

func TestLoginMalformedBody(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/login", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	r, sess := newAuthRouter(t)

	postJSON(r, "/api/v1/auth/login", `{"email":"student@example.com","password":"password"}`)
	require.True(t, sess.Authenticated())

	w := postJSON(r, "/api/v1/auth/logout", ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sess.Authenticated())
}

func TestMeReflectsSessionState(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	postJSON(r, "/api/v1/auth/login", `{"email":"student@example.com","password":"password"}`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"s1"`)
}
