package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService := &JWTService{}

	t.Run("Valid token round trip", func(t *testing.T) {
		token, err := jwtService.GenerateJWT(7, RoleMember, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, RoleMember, claims.Role)
	})

	t.Run("Expired token rejected", func(t *testing.T) {
		token, err := jwtService.GenerateJWT(7, RoleMember, time.Now().Add(-time.Hour))
		assert.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		claims, err := jwtService.ValidateToken("not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Zero user id rejected", func(t *testing.T) {
		token, err := jwtService.GenerateJWT(0, RoleMember, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, int64(7), r.Context().Value(UserIDKey))
		assert.Equal(t, RoleMember, r.Context().Value(RoleKey))
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid bearer token passes with identity in context", func(t *testing.T) {
		token, err := jwtService.GenerateJWT(7, RoleMember, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Non-bearer header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rr := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Admin passes", func(t *testing.T) {
		token, err := jwtService.GenerateJWT(99, RoleAdmin, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AdminMiddleware(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Member forbidden", func(t *testing.T) {
		token, err := jwtService.GenerateJWT(7, RoleMember, time.Now().Add(time.Hour))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AdminMiddleware(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Missing token unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		AdminMiddleware(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
