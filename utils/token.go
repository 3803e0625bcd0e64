package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired inspects a persisted bearer token's exp claim without
// verifying the signature; verification is the backend's job. Tokens that are
// not JWTs at all are treated as live and left for check-auth to judge.
func TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
