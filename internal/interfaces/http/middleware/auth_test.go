package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"glg-capital.backend/pkg/jwt"
	"glg-capital.backend/pkg/redis"
)

type sessionLookupStub struct {
	data *redis.SessionData
	err  error
}

func (s sessionLookupStub) GetSession(context.Context, string) (*redis.SessionData, error) {
	return s.data, s.err
}

func newAuthRouter(svc *jwt.JWTService, sessions SessionLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(svc, sessions))
	r.GET("/me", func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	admin := r.Group("/admin", RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func doGet(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_Bearer(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair("u-1", "a@glg.test", "user")
	require.NoError(t, err)
	r := newAuthRouter(svc, nil)

	w := doGet(r, "/me", map[string]string{AuthorizationHeader: BearerPrefix + pair.AccessToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u-1"`)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", map[string]string{AuthorizationHeader: "Token abc"}).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", map[string]string{AuthorizationHeader: BearerPrefix + "garbage"}).Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	svc := jwt.NewJWTService("secret", -time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair("u-1", "a@glg.test", "user")
	require.NoError(t, err)

	w := doGet(newAuthRouter(svc, nil), "/me", map[string]string{AuthorizationHeader: BearerPrefix + pair.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddleware_Session(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair("u-2", "b@glg.test", "admin")
	require.NoError(t, err)

	r := newAuthRouter(svc, sessionLookupStub{data: &redis.SessionData{UserID: "u-2", AccessToken: pair.AccessToken}})
	w := doGet(r, "/admin/ping", map[string]string{SessionHeader: "sid"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	r = newAuthRouter(svc, sessionLookupStub{err: errors.New("redis: nil")})
	w = doGet(r, "/me", map[string]string{SessionHeader: "sid", AuthorizationHeader: BearerPrefix + pair.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_SessionHeaderIgnoredWithoutStore(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair("u-1", "a@glg.test", "user")
	require.NoError(t, err)

	w := doGet(newAuthRouter(svc, nil), "/me", map[string]string{SessionHeader: "sid", AuthorizationHeader: BearerPrefix + pair.AccessToken})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	r := newAuthRouter(svc, nil)

	for role, want := range map[string]int{
		"user":       http.StatusForbidden,
		"admin":      http.StatusNoContent,
		"superadmin": http.StatusNoContent,
	} {
		pair, err := svc.GenerateTokenPair("u-1", "a@glg.test", role)
		require.NoError(t, err)
		w := doGet(r, "/admin/ping", map[string]string{AuthorizationHeader: BearerPrefix + pair.AccessToken})
		assert.Equal(t, want, w.Code, role)
	}
}

func TestRequireRole_MissingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/x", nil).Code)
}
