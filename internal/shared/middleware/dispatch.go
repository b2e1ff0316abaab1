package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mediflow/internal/session"
	"mediflow/internal/shared/utils/response"
)

// FilterConfig names the path sets the dispatch filter protects. The filter
// only ever checks cookie presence; full verification and role enforcement
// happen in the handlers via the gate.
type FilterConfig struct {
	ProtectedAPIPrefixes []string
	ProtectedPageRoutes  []string
	PublicEntryPoints    []string
}

// DefaultFilterConfig builds the filter config for the application's route
// map. apiBase is the versioned API prefix (e.g. "/api/v1").
func DefaultFilterConfig(apiBase string) FilterConfig {
	return FilterConfig{
		ProtectedAPIPrefixes: []string{
			apiBase + "/admin",
			apiBase + "/doctor",
			apiBase + "/front-desk",
			apiBase + "/messages",
			apiBase + "/patient/appointments",
			apiBase + "/patient/triage",
		},
		ProtectedPageRoutes: []string{"/admin", "/doctor", "/front-desk", "/patient"},
		PublicEntryPoints:   []string{LoginPath},
	}
}

// DispatchFilter runs before every handler as a coarse, cheap gate:
//
//  1. protected API prefix without an access cookie → deny unauthenticated;
//  2. public entry point with a cookie present → redirect to the root, which
//     dispatches by role once full verification happens downstream;
//  3. protected page route without a cookie → redirect to login, preserving
//     the requested path;
//  4. anything else passes through untouched.
//
// An expired or tampered token still passes this filter and is rejected by
// the per-handler gate.
func DispatchFilter(cfg FilterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		hasToken := session.Present(c.Request)

		for _, prefix := range cfg.ProtectedAPIPrefixes {
			if strings.HasPrefix(path, prefix) && !hasToken {
				response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
				c.Abort()
				return
			}
		}

		for _, entry := range cfg.PublicEntryPoints {
			if path == entry && hasToken {
				c.Redirect(http.StatusFound, RootPath)
				c.Abort()
				return
			}
		}

		for _, route := range cfg.ProtectedPageRoutes {
			if (path == route || strings.HasPrefix(path, route+"/")) && !hasToken {
				c.Redirect(http.StatusFound, LoginRedirectURL(path))
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
