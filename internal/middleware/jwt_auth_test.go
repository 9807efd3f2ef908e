package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devfolio/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims *models.JwtCustomClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runMiddleware(mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return c, handler(c)
}

func TestJWTAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	claims := &models.JwtCustomClaims{
		UserID:      7,
		Email:       "dev@example.com",
		FirebaseUID: "uid-7",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := signToken(t, claims, "test-secret")

	c, err := runMiddleware(JWTAuthMiddleware(), "Bearer "+token)
	require.NoError(t, err)

	got, ok := c.Get(ContextUserKey).(*models.JwtCustomClaims)
	require.True(t, ok)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "uid-7", got.FirebaseUID)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	_, err := runMiddleware(JWTAuthMiddleware(), "")

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	_, err := runMiddleware(JWTAuthMiddleware(), "Token abc")

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "right-secret")
	token := signToken(t, &models.JwtCustomClaims{UserID: 1}, "wrong-secret")

	_, err := runMiddleware(JWTAuthMiddleware(), "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	claims := &models.JwtCustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := signToken(t, claims, "test-secret")

	_, err := runMiddleware(JWTAuthMiddleware(), "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()

	run := func(claims *models.JwtCustomClaims) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if claims != nil {
			c.Set(ContextUserKey, claims)
		}
		handler := AdminOnly()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		return handler(c)
	}

	err := run(nil)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)

	err = run(&models.JwtCustomClaims{UserID: 1})
	he, ok = err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)

	assert.NoError(t, run(&models.JwtCustomClaims{UserID: 1, IsAdmin: true}))
}
