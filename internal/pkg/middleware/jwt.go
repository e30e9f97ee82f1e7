package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fintrackr/fintrackr/internal/pkg/jwt"
	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/internal/utils"
)

// Context keys set by the JWT middleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyClaims = "claims"
)

// JWTAuthMiddleware creates a middleware for JWT authentication.
// On success the caller's user id and the typed claims are stored in
// the Echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, err := claims.UserID()
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: subject is not a valid user id")
			}

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}

// CurrentUserID extracts the authenticated caller's user id from the
// Echo context. The second return value is false when the request did
// not pass the JWT middleware.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return userID, ok
}
