package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	secret := []byte(testJWTSecret)

	t.Run("valid token yields principal", func(t *testing.T) {
		p, err := parseToken(mintToken(t, "user-1", "admin"), secret)
		require.NoError(t, err)
		assert.Equal(t, "user-1", p.UserID)
		assert.Equal(t, roleAdmin, p.Role)
		assert.True(t, p.IsAdmin())
	})

	t.Run("db role spelling is normalized", func(t *testing.T) {
		p, err := parseToken(mintToken(t, "user-2", "business_owner"), secret)
		require.NoError(t, err)
		assert.Equal(t, roleBusiness, p.Role)
		assert.False(t, p.IsAdmin())
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		_, err := parseToken(mintToken(t, "user-3", "admin"), []byte("other-secret"))
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := mintTokenWithExpiry(t, "user-4", "admin", time.Now().Add(-time.Hour))
		_, err := parseToken(expired, secret)
		assert.Error(t, err)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		claims := authClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-5",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = parseToken(unsigned, secret)
		assert.Error(t, err)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := parseToken(mintToken(t, "user-6", "superuser"), secret)
		assert.Error(t, err)
	})

	t.Run("missing subject is rejected", func(t *testing.T) {
		_, err := parseToken(mintToken(t, "", "admin"), secret)
		assert.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Aroma Cafe")

	t.Run("missing token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/sessions", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, codeUnauthorized, errorCode(t, rec))
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/sessions", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, codeUnauthorized, errorCode(t, rec))
	})

	t.Run("valid token passes", func(t *testing.T) {
		token := mintToken(t, biz.ID, "business")
		rec := env.do(t, http.MethodGet, "/api/v1/sessions", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("token accepted from query param", func(t *testing.T) {
		token := mintToken(t, biz.ID, "business")
		rec := env.do(t, http.MethodGet, "/api/v1/sessions?token="+token, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role gate rejects non-admin", func(t *testing.T) {
		token := mintToken(t, biz.ID, "business")
		rec := env.do(t, http.MethodGet, "/api/v1/businesses", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, codeNotAllowed, errorCode(t, rec))
	})

	t.Run("role gate admits admin", func(t *testing.T) {
		token := mintToken(t, "root", "admin")
		rec := env.do(t, http.MethodGet, "/api/v1/businesses", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
