package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"mediflow/internal/session"
	"mediflow/internal/shared/utils/response"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

// Context keys populated after a successful authorization check.
const (
	ContextClaims     = "auth_claims"
	ContextUserID     = "user_id"
	ContextUserRole   = "user_role"
	ContextHospitalID = "hospital_id"
)

// LoginPath is where unauthenticated page visitors are sent; RootPath is
// where authenticated-but-wrong-role visitors are sent. Neither target is
// configurable per route.
const (
	LoginPath = "/login"
	RootPath  = "/"
)

// Outcome is the tagged result of an authorization check. Exactly one of the
// three values is produced for every request; there is no fallthrough case.
type Outcome int

const (
	OutcomeAuthorized Outcome = iota
	OutcomeUnauthenticated
	OutcomeForbidden
)

// GateResult carries the outcome plus the verified claims when authorized.
// Claims is also set for OutcomeForbidden so callers can log who was denied.
type GateResult struct {
	Outcome Outcome
	Claims  *tokens.Claims
}

// CurrentUser resolves the inbound request to verified claims, or nil when no
// access cookie is present or verification fails. Absence of identity is a
// normal outcome here, not an error.
func CurrentUser(c *gin.Context, codec *tokens.Codec) *tokens.Claims {
	tokenString, ok := session.AccessToken(c)
	if !ok {
		return nil
	}
	claims, err := codec.VerifyAccess(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

// Check is the transport-agnostic authorization decision: resolve the session,
// then test role membership. API and page callers map the result to their own
// failure representation; the decision logic itself lives only here.
func Check(c *gin.Context, codec *tokens.Codec, allowed ...users.Role) GateResult {
	claims := CurrentUser(c, codec)
	if claims == nil {
		return GateResult{Outcome: OutcomeUnauthenticated}
	}
	for _, role := range allowed {
		if claims.Role == role {
			return GateResult{Outcome: OutcomeAuthorized, Claims: claims}
		}
	}
	return GateResult{Outcome: OutcomeForbidden, Claims: claims}
}

// RequireRoles gates an API route. Unauthenticated and forbidden map to fixed
// status/code pairs (401 unauthenticated, 403 forbidden) that never vary per
// endpoint.
func RequireRoles(codec *tokens.Codec, allowed ...users.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Check(c, codec, allowed...)
		switch result.Outcome {
		case OutcomeUnauthenticated:
			response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
			c.Abort()
		case OutcomeForbidden:
			response.RespondError(c, http.StatusForbidden, response.CodeForbidden, "Insufficient permissions", nil)
			c.Abort()
		default:
			setClaims(c, result.Claims)
			c.Next()
		}
	}
}

// RequirePageRoles gates a server-rendered page. Unauthenticated visitors are
// redirected to the login entry point with the requested path preserved;
// authenticated visitors with the wrong role are sent to the application
// root, which dispatches by role.
func RequirePageRoles(codec *tokens.Codec, allowed ...users.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Check(c, codec, allowed...)
		switch result.Outcome {
		case OutcomeUnauthenticated:
			c.Redirect(http.StatusFound, LoginRedirectURL(c.Request.URL.Path))
			c.Abort()
		case OutcomeForbidden:
			c.Redirect(http.StatusFound, RootPath)
			c.Abort()
		default:
			setClaims(c, result.Claims)
			c.Next()
		}
	}
}

// LoginRedirectURL builds the login entry point URL with the originally
// requested path recorded so the login flow can return the user there.
func LoginRedirectURL(from string) string {
	return LoginPath + "?from=" + url.QueryEscape(from)
}

// ClaimsFromContext returns the verified claims stored by the gate.
func ClaimsFromContext(c *gin.Context) (*tokens.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*tokens.Claims)
	return claims, ok
}

func setClaims(c *gin.Context, claims *tokens.Claims) {
	c.Set(ContextClaims, claims)
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserRole, string(claims.Role))
	c.Set(ContextHospitalID, claims.HospitalID)
}
