package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseClaimsReadsRoleAndExpiry(t *testing.T) {
	expiry := time.Now().Add(2 * time.Hour)
	raw := signedToken(t, Claims{
		Role:  "tech",
		Email: "tech@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	})

	claims, err := ParseClaims(raw)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}
	if claims.Role != "tech" {
		t.Fatalf("Role = %q, expected tech", claims.Role)
	}
	if claims.Email != "tech@example.com" {
		t.Fatalf("Email = %q, expected tech@example.com", claims.Email)
	}
	if claims.ExpiresSoon(time.Hour) {
		t.Fatal("token expiring in 2h reported ExpiresSoon(1h)")
	}
	if !claims.ExpiresSoon(3 * time.Hour) {
		t.Fatal("token expiring in 2h did not report ExpiresSoon(3h)")
	}
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-jwt", "a.b"} {
		if _, err := ParseClaims(raw); err == nil {
			t.Fatalf("ParseClaims(%q) succeeded, expected error", raw)
		}
	}
}

func TestExpiresSoonWithoutExpClaim(t *testing.T) {
	raw := signedToken(t, Claims{Role: "admin"})
	claims, err := ParseClaims(raw)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}
	if claims.ExpiresSoon(24 * time.Hour) {
		t.Fatal("token without exp claim reported ExpiresSoon")
	}
}
