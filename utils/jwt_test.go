package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWT_Claims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRE", "1h")

	tokenString, err := GenerateJWT(42, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not validate: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["userId"].(float64) != 42 {
		t.Errorf("expected userId 42, got %v", claims["userId"])
	}
	if claims["email"] != "user@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
}
