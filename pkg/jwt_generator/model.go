package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const IssuerDefault = "devcamper"

// Claims carries only the registered claims. Subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}
