package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken signs an HS256 bearer token for userID that the API's
// auth middleware accepts. Production tokens come from the identity
// provider; this is used by the CLI for local testing.
func GenerateAccessToken(userID, secret, issuer string, ttl time.Duration, now time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}
	if ttl <= 0 {
		return "", errors.New("token lifetime must be positive")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
