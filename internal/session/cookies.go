// Package session persists the token pair as HTTP cookies. The cookies are
// the only session transport: there is no bearer-header mode, and the server
// keeps no per-session state of its own.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"

	AccessTokenMaxAge  = 15 * time.Minute
	RefreshTokenMaxAge = 7 * 24 * time.Hour
)

// Establish writes both cookies on the outgoing response: site-wide path,
// HTTP-only, same-site lax.
func Establish(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, accessToken, int(AccessTokenMaxAge.Seconds()), "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, int(RefreshTokenMaxAge.Seconds()), "/", "", false, true)
}

// AccessToken returns the access token from the inbound request, if any.
func AccessToken(c *gin.Context) (string, bool) {
	value, err := c.Cookie(AccessTokenCookie)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// RefreshToken returns the refresh token from the inbound request, if any.
func RefreshToken(c *gin.Context) (string, bool) {
	value, err := c.Cookie(RefreshTokenCookie)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// Present reports whether an access token cookie is attached to the request
// at all. This is the cheap presence check used by the dispatch filter; it
// performs no verification.
func Present(r *http.Request) bool {
	cookie, err := r.Cookie(AccessTokenCookie)
	return err == nil && cookie.Value != ""
}

// Clear deletes both cookies. Clearing an absent session is not an error.
func Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", false, true)
}
