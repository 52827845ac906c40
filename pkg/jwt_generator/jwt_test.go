//go:build unit

package jwt_generator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-api/pkg/config"
)

var (
	TestUserID = uuid.New().String()
	TestSecret = []byte("test-secret-key")
)

func newTestJwtGenerator(t *testing.T) JwtGenerator {
	jwtGenerator, err := NewJwtGenerator(&config.JwtConfig{
		Secret: TestSecret,
	})
	require.NoError(t, err)

	return jwtGenerator
}

func TestNewJwtGenerator(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(&config.JwtConfig{
			Secret: TestSecret,
		})

		assert.NoError(t, err)
		assert.Implements(t, (*JwtGenerator)(nil), jwtGenerator)
	})

	t.Run("empty secret", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(&config.JwtConfig{})

		assert.Error(t, err)
		assert.Nil(t, jwtGenerator)
	})
}

func TestJwtGenerator_GenerateToken(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		jwtGenerator := newTestJwtGenerator(t)

		token, err := jwtGenerator.GenerateToken(time.Now().UTC().Add(5*time.Minute), TestUserID)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("empty subject", func(t *testing.T) {
		jwtGenerator := newTestJwtGenerator(t)

		_, err := jwtGenerator.GenerateToken(time.Now().UTC().Add(5*time.Minute), "")

		assert.Error(t, err)
	})
}

func TestJwtGenerator_VerifyToken(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		jwtGenerator := newTestJwtGenerator(t)

		token, err := jwtGenerator.GenerateToken(time.Now().UTC().Add(5*time.Minute), TestUserID)
		require.NoError(t, err)

		claims, err := jwtGenerator.VerifyToken(token)

		require.NoError(t, err)
		assert.Equal(t, TestUserID, claims.Subject)
		assert.Equal(t, IssuerDefault, claims.Issuer)
	})

	t.Run("expired token", func(t *testing.T) {
		jwtGenerator := newTestJwtGenerator(t)

		token, err := jwtGenerator.GenerateToken(time.Now().UTC().Add(-time.Minute), TestUserID)
		require.NoError(t, err)

		claims, err := jwtGenerator.VerifyToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := NewJwtGenerator(&config.JwtConfig{Secret: []byte("another-secret")})
		require.NoError(t, err)

		token, err := other.GenerateToken(time.Now().UTC().Add(5*time.Minute), TestUserID)
		require.NoError(t, err)

		_, err = newTestJwtGenerator(t).VerifyToken(token)

		assert.Error(t, err)
	})

	t.Run("token with another issuer", func(t *testing.T) {
		now := time.Now().UTC()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   TestUserID,
			Issuer:    "someone-else",
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}).SignedString(TestSecret)
		require.NoError(t, err)

		_, err = newTestJwtGenerator(t).VerifyToken(token)

		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := newTestJwtGenerator(t).VerifyToken("not-a-token")

		assert.Error(t, err)
	})

	t.Run("payload carries registered claims only", func(t *testing.T) {
		jwtGenerator := newTestJwtGenerator(t)

		token, err := jwtGenerator.GenerateToken(time.Now().UTC().Add(5*time.Minute), TestUserID)
		require.NoError(t, err)

		mapClaims := jwt.MapClaims{}
		_, _, err = jwt.NewParser().ParseUnverified(token, mapClaims)
		require.NoError(t, err)

		for key := range mapClaims {
			assert.Contains(t, []string{"jti", "sub", "iss", "iat", "nbf", "exp"}, key)
		}
	})
}
