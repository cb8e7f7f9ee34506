package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

var jwtSecret = []byte("super-secret-key")

// SetSecret replaces the signing key; called once at startup from config.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"admin":    user.IsAdmin,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims strips the Bearer prefix, parses the token and returns its claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	tokenStr := authorization
	if len(tokenStr) > 7 && tokenStr[:7] == "Bearer " {
		tokenStr = tokenStr[7:]
	}
	token, err := ParseToken(tokenStr)
	if err != nil {
		return nil, nil, err
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	return token, claims, nil
}
