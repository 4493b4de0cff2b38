package utils // package utils provides helpers for signing reset confirmation tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// resetAudience binds tokens to the reset form so they cannot be replayed
// against any other signed surface.
const resetAudience = "reset-db"

// ErrInvalidResetToken is returned for missing, expired or forged tokens.
var ErrInvalidResetToken = errors.New("invalid reset token")

// NewResetToken builds and signs an HS256 JWT that authorises one schema
// reset within ttl.
func NewResetToken(secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{resetAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return signed, nil
}

// VerifyResetToken checks signature, algorithm, audience and expiry.
func VerifyResetToken(secret, raw string) error {
	if raw == "" {
		return ErrInvalidResetToken
	}
	_, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(resetAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResetToken, err)
	}
	return nil
}
