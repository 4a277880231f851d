package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTClaims struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	jwt.RegisteredClaims
}

// GenerateToken signs a JWT carrying the user id and account category.
func GenerateToken(userID string, category string) (string, error) {
	jwtKey := []byte(os.Getenv("JWT_SECRET")) // read at call time
	if len(jwtKey) == 0 {
		return "", errors.New("JWT_SECRET is not set")
	}

	claims := JWTClaims{
		UserID:   userID,
		Category: category,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// VerifyToken parses and validates a signed JWT.
func VerifyToken(tokenStr string) (*JWTClaims, error) {
	jwtKey := []byte(os.Getenv("JWT_SECRET")) // read at call time
	if len(jwtKey) == 0 {
		return nil, errors.New("JWT_SECRET is not set")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
