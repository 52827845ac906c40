package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"bootcamp-api/pkg/config"
)

type JwtGenerator interface {
	GenerateToken(expirationTime time.Time, userId string) (string, error)
	VerifyToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	secret []byte
}

func NewJwtGenerator(jwtConfig *config.JwtConfig) (JwtGenerator, error) {
	if jwtConfig == nil || len(jwtConfig.Secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}

	return &jwtGenerator{
		secret: jwtConfig.Secret,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateToken(expirationTime time.Time, userId string) (string, error) {
	if userId == "" {
		return "", errors.New("jwt subject is empty")
	}

	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userId,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtGenerator.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) VerifyToken(rawJwtToken string) (*Claims, error) {
	var (
		err    error
		claims Claims
	)

	_, err = jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("jwt token is not valid signature")
		}

		return jwtGenerator.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, errors.New("ambiguous jwt token issuer")
	}

	now := time.Now().UTC()
	isJwtTokenAlive := claims.VerifyExpiresAt(now, true)
	if !isJwtTokenAlive {
		return nil, errors.New("expired jwt token")
	}

	isTokenStarted := claims.VerifyNotBefore(now, true)
	if !isTokenStarted {
		return nil, errors.New("jwt token is not started")
	}

	if claims.Subject == "" {
		return nil, errors.New("jwt token has no subject")
	}

	return &claims, nil
}
