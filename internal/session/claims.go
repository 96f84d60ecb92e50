package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// Claims is the subset of the backend's JWT payload the client cares about.
// Parsing is unverified: the backend owns the signing key, the client only
// peeks at role and expiry to avoid pointless round-trips.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the token's claims without signature validation.
func ParseClaims(token string) (*Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, ErrMalformedToken
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(trimmed, claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return claims, nil
}

// ExpiresSoon reports whether the token carries an expiry inside the given
// window. Tokens without an exp claim never report true.
func (c *Claims) ExpiresSoon(window time.Duration) bool {
	if c == nil || c.ExpiresAt == nil {
		return false
	}
	return time.Until(c.ExpiresAt.Time) < window
}
