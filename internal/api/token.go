package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired peeks at the exp claim of a JWT without verifying the
// signature (the client has no key material; validation is the backend's
// job). It lets the session skip a network round-trip that is certain to
// be rejected. Tokens that do not parse as JWTs are treated as opaque and
// never reported expired.
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
