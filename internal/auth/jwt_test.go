package auth

import (
	"testing"

	"rentaltracker-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	user := &models.User{
		ID:    7,
		Email: "coordinator@example.com",
		Role:  models.RoleCoordinator,
	}

	signed, err := GenerateToken(secret, user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected non-empty token")
	}

	token, err := jwt.ParseWithClaims(signed, &JWTCustomClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v (valid=%v)", err, token.Valid)
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if claims.UserID != 7 || claims.Email != "coordinator@example.com" || claims.Role != models.RoleCoordinator {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.com", Role: models.RoleAdmin}
	signed, err := GenerateToken("0123456789abcdef0123456789abcdef", user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(signed, &JWTCustomClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte("another-secret-another-secret-xx"), nil
	})
	if err == nil && token.Valid {
		t.Fatalf("expected verification failure with the wrong secret")
	}
}
