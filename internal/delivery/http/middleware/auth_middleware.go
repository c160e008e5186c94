package middleware

import (
	"net/http"
	"strings"

	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// userIDContextKey is where Authenticate leaves the caller's identity for
// handlers.
const userIDContextKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}
		if claims.UserID <= 0 {
			return unauthorized(c, "User ID missing from token")
		}

		// Set user info on the context for handlers to use
		c.Set(userIDContextKey, claims.UserID)

		return next(c)
	}
}

// unauthorized rejects the request with a bearer-token challenge header.
func unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return c.JSON(http.StatusUnauthorized, map[string]string{"error": message})
}

// UserID extracts the authenticated caller's identity from the context.
// It reports false on routes where Authenticate did not run.
func UserID(c echo.Context) (entity.UserID, bool) {
	userID, ok := c.Get(userIDContextKey).(entity.UserID)

	return userID, ok && userID > 0
}
