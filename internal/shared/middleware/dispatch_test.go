package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mediflow/internal/session"
	"mediflow/internal/shared/middleware"
)

func filterEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.DispatchFilter(middleware.DefaultFilterConfig("/api/v1")))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	engine.GET("/api/v1/admin/stats", ok)
	engine.GET("/api/v1/hospital/verify", ok)
	engine.GET("/login", ok)
	engine.GET("/doctor", ok)
	engine.GET("/", ok)
	return engine
}

func garbageCookie() *http.Cookie {
	return &http.Cookie{Name: session.AccessTokenCookie, Value: "not-even-a-token"}
}

func TestFilterDeniesProtectedAPIWithoutCookie(t *testing.T) {
	engine := filterEngine()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "unauthenticated", errorCode(t, rec.Body.Bytes()))
}

// The filter is presence-only: any cookie value, even garbage, passes it.
// Verification belongs to the per-handler gate.
func TestFilterPassesProtectedAPIWithAnyCookie(t *testing.T) {
	engine := filterEngine()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.AddCookie(garbageCookie())
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFilterRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	engine := filterEngine()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(garbageCookie())
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	// Without a cookie the login page renders normally.
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFilterRedirectsProtectedPageToLogin(t *testing.T) {
	engine := filterEngine()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctor", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login?from=%2Fdoctor", rec.Header().Get("Location"))
}

func TestFilterPassesUnprotectedPaths(t *testing.T) {
	engine := filterEngine()

	for _, path := range []string{"/", "/api/v1/hospital/verify"} {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
