package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kotibus/config"
	"kotibus/models"
)

type SessionClaims struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	IsGuest   bool   `json:"is_guest"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the given identity.
func GenerateToken(session models.Session) (string, error) {
	expiry, err := time.ParseDuration(config.AppConfig.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := SessionClaims{
		SessionID: session.ID,
		Name:      session.Name,
		Email:     session.Email,
		IsGuest:   session.IsGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken parses and verifies a session token.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
