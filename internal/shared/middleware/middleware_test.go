package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mediflow/internal/session"
	"mediflow/internal/shared/config"
	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCodec(t *testing.T) *tokens.Codec {
	t.Helper()
	return tokens.NewCodec(config.JWTConfig{
		Secret:           "middleware-test-secret",
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	})
}

func accessCookie(t *testing.T, codec *tokens.Codec, role users.Role) *http.Cookie {
	t.Helper()
	signed, err := codec.Sign(tokens.Claims{
		UserID:     "u1",
		Role:       role,
		HospitalID: "h1",
		Kind:       tokens.KindAccess,
	}, 15*time.Minute)
	require.NoError(t, err)
	return &http.Cookie{Name: session.AccessTokenCookie, Value: signed}
}

func apiEngine(codec *tokens.Codec, allowed ...users.Role) *gin.Engine {
	engine := gin.New()
	engine.GET("/protected", middleware.RequireRoles(codec, allowed...), func(c *gin.Context) {
		claims, _ := middleware.ClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "hospital_id": claims.HospitalID})
	})
	return engine
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Code
}

// Authorization is granted iff the claim role is a member of the allowed set,
// checked over every role and every subset of the enumeration.
func TestRequireRolesMatrix(t *testing.T) {
	codec := newCodec(t)

	for mask := 0; mask < 1<<len(users.AllRoles); mask++ {
		var allowed []users.Role
		for i, role := range users.AllRoles {
			if mask&(1<<i) != 0 {
				allowed = append(allowed, role)
			}
		}

		engine := apiEngine(codec, allowed...)
		for _, role := range users.AllRoles {
			name := fmt.Sprintf("role=%s allowed=%v", role, allowed)
			t.Run(name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/protected", nil)
				req.AddCookie(accessCookie(t, codec, role))
				engine.ServeHTTP(rec, req)

				member := false
				for _, a := range allowed {
					if a == role {
						member = true
					}
				}
				if member {
					require.Equal(t, http.StatusOK, rec.Code)
				} else {
					require.Equal(t, http.StatusForbidden, rec.Code)
					require.Equal(t, "forbidden", errorCode(t, rec.Body.Bytes()))
				}
			})
		}
	}
}

// No cookie at all resolves to unauthenticated for every possible allowed set.
func TestRequireRolesNoCookie(t *testing.T) {
	codec := newCodec(t)

	for mask := 1; mask < 1<<len(users.AllRoles); mask++ {
		var allowed []users.Role
		for i, role := range users.AllRoles {
			if mask&(1<<i) != 0 {
				allowed = append(allowed, role)
			}
		}

		engine := apiEngine(codec, allowed...)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "unauthenticated", errorCode(t, rec.Body.Bytes()))
	}
}

func TestRequireRolesExpiredToken(t *testing.T) {
	codec := newCodec(t)
	engine := apiEngine(codec, users.RoleDoctor)

	signed, err := codec.Sign(tokens.Claims{UserID: "u1", Role: users.RoleDoctor, Kind: tokens.KindAccess}, -time.Second)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: signed})
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "unauthenticated", errorCode(t, rec.Body.Bytes()))
}

// A refresh token presented as an access token must be rejected even though
// its signature is valid and it has not expired.
func TestRequireRolesRejectsRefreshToken(t *testing.T) {
	codec := newCodec(t)
	engine := apiEngine(codec, users.AllRoles...)

	signed, err := codec.Sign(tokens.Claims{UserID: "u1", Kind: tokens.KindRefresh}, time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: signed})
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "unauthenticated", errorCode(t, rec.Body.Bytes()))
}

// Logout (client cookie gone) followed by a protected request must yield
// unauthenticated, never forbidden.
func TestLogoutThenProtectedRequest(t *testing.T) {
	codec := newCodec(t)
	engine := apiEngine(codec, users.RolePatient)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(accessCookie(t, codec, users.RolePatient))
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "unauthenticated", errorCode(t, rec.Body.Bytes()))
}

// Doctor claims against [ADMIN] are forbidden; against [DOCTOR, ADMIN] they
// are authorized and the handler sees the original claim fields.
func TestDoctorRoleScenario(t *testing.T) {
	codec := newCodec(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(accessCookie(t, codec, users.RoleDoctor))
	apiEngine(codec, users.RoleAdmin).ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(accessCookie(t, codec, users.RoleDoctor))
	apiEngine(codec, users.RoleDoctor, users.RoleAdmin).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "u1", body["user_id"])
	require.Equal(t, "h1", body["hospital_id"])
}

func TestRequirePageRoles(t *testing.T) {
	codec := newCodec(t)
	engine := gin.New()
	engine.GET("/admin", middleware.RequirePageRoles(codec, users.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "admin dashboard")
	})

	// No session: redirect to login, preserving the requested path.
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login?from=%2Fadmin", rec.Header().Get("Location"))

	// Wrong role: redirect to the application root.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(accessCookie(t, codec, users.RolePatient))
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	// Right role: page renders.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(accessCookie(t, codec, users.RoleAdmin))
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCurrentUserResolution(t *testing.T) {
	codec := newCodec(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.Nil(t, middleware.CurrentUser(c, codec))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(accessCookie(t, codec, users.RoleFrontDesk))
	claims := middleware.CurrentUser(c, codec)
	require.NotNil(t, claims)
	require.Equal(t, users.RoleFrontDesk, claims.Role)
}
