package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bvtech/attendance-server/config"
)

// Tokens carry a bare email as the subject and nothing else: no expiry, no
// structured claims. Verification therefore yields a primitive identity string
// that handlers compare directly against path parameters.

// IssueToken signs the given email with the configured secret using HS256.
func IssueToken(email string) (string, error) {
	cfg := config.Get()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: email,
	})
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseIdentity validates a token and returns the email it asserts. Malformed
// tokens, wrong signatures and unexpected signing methods all fail with an error.
func ParseIdentity(tokenStr string) (string, error) {
	cfg := config.Get()
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}

	return claims.Subject, nil
}
