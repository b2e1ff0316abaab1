package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mediflow/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, ck := range rec.Result().Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestEstablishSetsBothCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	session.Establish(c, "access-value", "refresh-value")

	cookies := cookiesByName(rec)
	require.Len(t, cookies, 2)

	access := cookies[session.AccessTokenCookie]
	require.NotNil(t, access)
	require.Equal(t, "access-value", access.Value)
	require.Equal(t, "/", access.Path)
	require.True(t, access.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, access.SameSite)
	require.Equal(t, int(session.AccessTokenMaxAge.Seconds()), access.MaxAge)

	refresh := cookies[session.RefreshTokenCookie]
	require.NotNil(t, refresh)
	require.Equal(t, "refresh-value", refresh.Value)
	require.True(t, refresh.HttpOnly)
	require.Equal(t, int(session.RefreshTokenMaxAge.Seconds()), refresh.MaxAge)
}

func TestAccessTokenRead(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "tok"})

	value, ok := session.AccessToken(c)
	require.True(t, ok)
	require.Equal(t, "tok", value)
}

func TestAccessTokenAbsent(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := session.AccessToken(c)
	require.False(t, ok)
	require.False(t, session.Present(c.Request))
}

func TestClearExpiresBothCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)

	// Clearing with no session present must not be an error either.
	session.Clear(c)

	cookies := cookiesByName(rec)
	require.Len(t, cookies, 2)
	for _, name := range []string{session.AccessTokenCookie, session.RefreshTokenCookie} {
		ck := cookies[name]
		require.NotNil(t, ck)
		require.Empty(t, ck.Value)
		require.Negative(t, ck.MaxAge)
	}
}
