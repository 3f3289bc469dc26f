package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT claims carried by an access token. The user
// identity travels in the registered Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}
