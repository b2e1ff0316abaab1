package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"mediflow/internal/shared/config"
	"mediflow/internal/users"
)

// Kind discriminates the two credentials a session is made of. A refresh
// token must never be accepted where access claims are expected.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// ErrInvalidToken is the single failure value of verification. Bad signature,
// expiry, wrong algorithm and malformed input all collapse into it so that
// callers cannot leak why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded token payload: who the principal is, what role it
// holds and which hospital its data access is confined to. Values are
// immutable once issued.
type Claims struct {
	UserID     string     `json:"user_id"`
	Role       users.Role `json:"role"`
	HospitalID string     `json:"hospital_id"`
	Kind       string     `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// Pair bundles the two cookies' worth of credentials issued at login.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Codec signs and verifies tokens with a single shared HS256 secret. The
// secret is injected once at construction; nothing reads the environment at
// call sites.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(cfg config.JWTConfig) *Codec {
	return &Codec{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessExpiresIn,
		refreshTTL: cfg.RefreshExpiresIn,
	}
}

// Sign serializes claims plus an expiration derived from ttl into a signed
// compact token.
func (c *Codec) Sign(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		Issuer:    "mediflow",
		Subject:   claims.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature and expiration and returns the decoded claims.
// Every failure mode maps to ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyAccess is Verify plus the kind check: refresh tokens are rejected
// wherever access claims are expected.
func (c *Codec) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := c.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Kind != "" && claims.Kind != KindAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IssuePair mints the access/refresh pair for a freshly authenticated user.
// The access token carries full claims; the refresh token carries only the
// subject and its kind marker.
func (c *Codec) IssuePair(userID string, role users.Role, hospitalID string) (*Pair, error) {
	accessToken, err := c.Sign(Claims{
		UserID:     userID,
		Role:       role,
		HospitalID: hospitalID,
		Kind:       KindAccess,
	}, c.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := c.Sign(Claims{
		UserID: userID,
		Kind:   KindRefresh,
	}, c.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(c.accessTTL.Seconds()),
	}, nil
}

// AccessTTL exposes the configured access token lifetime for cookie max ages.
func (c *Codec) AccessTTL() time.Duration { return c.accessTTL }

// RefreshTTL exposes the configured refresh token lifetime for cookie max ages.
func (c *Codec) RefreshTTL() time.Duration { return c.refreshTTL }
