package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"neudev_backend/internals/configs"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	signed, err := IssueToken(42, "student", now)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("parse issued token: %v", err)
	}

	if sub, _ := claims["sub"].(string); sub != "42" {
		t.Errorf("sub = %v, want %q", claims["sub"], "42")
	}
	if role, _ := claims["role"].(string); role != "student" {
		t.Errorf("role = %v, want %q", claims["role"], "student")
	}
	exp, _ := claims["exp"].(float64)
	if got := time.Unix(int64(exp), 0); !got.Equal(now.Add(TokenTTL)) {
		t.Errorf("exp = %s, want %s", got, now.Add(TokenTTL))
	}
}

func TestIssueTokenMissingSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, err := IssueToken(1, "teacher", time.Now()); err == nil {
		t.Error("expected an error with an empty secret")
	}
}
