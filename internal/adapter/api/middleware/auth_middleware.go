package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"barterhub/internal/infrastructure/auth"
)

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		userID, role, err := m.jwtManager.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", userID)
		c.Set("role", role)

		return next(c)
	}
}

// VerifyToken resolves a raw token to a user id, used by the websocket
// endpoint where the token arrives as a query parameter.
func (m *AuthMiddleware) VerifyToken(token string) (int64, error) {
	userID, _, err := m.jwtManager.Verify(token)
	return userID, err
}
