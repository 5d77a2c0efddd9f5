package auth_test

import (
	"testing"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/config"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "super-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims auth.Claims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestCurrentUser(t *testing.T) {
	provider := auth.New(&config.AuthConfig{JWTSecret: secret, Audience: "authenticated"})

	validClaims := auth.Claims{
		Email: "g@x.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("success", func(t *testing.T) {
		identity, err := provider.CurrentUser(sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims))

		assert.NoError(t, err)
		assert.Equal(t, &auth.Identity{UserID: "user-1", Email: "g@x.com", Role: "authenticated"}, identity)
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		_, err := provider.CurrentUser(sign(t, jwt.SigningMethodHS256, []byte(secret), claims))
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := provider.CurrentUser(sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims))
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := validClaims
		claims.Audience = jwt.ClaimStrings{"anon"}

		_, err := provider.CurrentUser(sign(t, jwt.SigningMethodHS256, []byte(secret), claims))
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := validClaims
		claims.Subject = ""

		_, err := provider.CurrentUser(sign(t, jwt.SigningMethodHS256, []byte(secret), claims))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := provider.CurrentUser("not-a-token")
		assert.Error(t, err)
	})
}
