package auth

import (
	"testing"

	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := models.User{ID: 7, Username: "admin", IsAdmin: true}

	tokenStr, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	token, claims, err := TokenClaims("Bearer " + tokenStr)
	if err != nil {
		t.Fatalf("error parsing token: %v", err)
	}
	if !token.Valid {
		t.Fatalf("expected a valid token")
	}

	if sub, _ := claims["sub"].(float64); int(sub) != 7 {
		t.Errorf("expected sub 7, got %v", claims["sub"])
	}
	if claims["username"] != "admin" {
		t.Errorf("expected username 'admin', got %v", claims["username"])
	}
	if admin, _ := claims["admin"].(bool); !admin {
		t.Errorf("expected admin claim true")
	}
}

func TestTokenClaims_RejectsTampering(t *testing.T) {
	tokenStr, err := GenerateToken(models.User{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	tampered := tokenStr[:len(tokenStr)-2] + "xx"
	if _, _, err := TokenClaims("Bearer " + tampered); err == nil {
		t.Errorf("expected a signature error for a tampered token")
	}
}
