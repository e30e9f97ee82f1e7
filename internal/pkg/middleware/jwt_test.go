package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/fintrackr/fintrackr/internal/pkg/jwt"
	"github.com/fintrackr/fintrackr/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:         "test-secret",
		Issuer:         "fintrackr",
		Audience:       "fintrackr-api",
		ExpirationDays: 7,
	}
}

func runJWTMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var capturedID uuid.UUID
	var reached bool
	handler := JWTAuthMiddleware(testJWTConfig())(func(c echo.Context) error {
		reached = true
		capturedID, _ = CurrentUserID(c)
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	require.NoError(t, err)
	return rec, capturedID, reached
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "alice", "alice@example.com", testJWTConfig())
	require.NoError(t, err)

	rec, capturedID, reached := runJWTMiddleware(t, "Bearer "+token)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, capturedID)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, reached := runJWTMiddleware(t, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_BadFormat(t *testing.T) {
	rec, _, reached := runJWTMiddleware(t, "Token abcdef")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	rec, _, reached := runJWTMiddleware(t, "Bearer garbage")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUserID_NotSet(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := CurrentUserID(c)
	assert.False(t, ok)
}
