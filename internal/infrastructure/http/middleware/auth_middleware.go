package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/meetingbot-team/meetingbot/pkg/jwt"
)

// UserIDContextKey is the Echo context key for the authenticated user id
const UserIDContextKey = "user_id"

// EchoAuth returns an Echo middleware that validates the bearer token
// and stores the authenticated user id (uuid.UUID) in the context.
func EchoAuth(jwtManager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"message": "Authentication required",
				})
			}

			userID, err := jwtManager.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"message": "Invalid token",
				})
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}

// UserIDFromContext retrieves the authenticated user id set by EchoAuth
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return userID, ok
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
