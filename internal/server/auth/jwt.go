// Package auth implements the session token codec: compact signed JWTs
// (HS256) carrying the user's email as the identity claim.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity assertion embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// CreateToken serializes and signs an identity claim for the given email.
// A validityDuration of zero produces a non-expiring token; expiry policy is
// a configuration choice, not an implicit default.
func CreateToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := Claims{Email: email}
	if validityDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validityDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken verifies the token against secretKey and returns the embedded
// claims. A malformed, corrupted, expired, or differently-signed token yields
// nil: callers must treat the absence of claims as "unauthenticated", never
// as an error.
func ValidateToken(tokenString string, secretKey []byte) *Claims {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}

	return claims
}
