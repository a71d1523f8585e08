package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/rajeshk/portfolio/internal/pkg/jwt"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication on admin routes
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

			// Extract the token
			tokenString := parts[1]

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Extract admin ID from claims
			adminIDStr, ok := (*claims)["admin_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing admin_id claim")
			}

			username, ok := (*claims)["username"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing username claim")
			}

			// Parse the UUID
			adminID, err := uuid.Parse(fmt.Sprintf("%v", adminIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: admin_id is not a valid UUID")
			}

			// Set the admin ID and username in the context
			c.Set("admin_id", adminID)
			c.Set("admin_username", username)

			return next(c)
		}
	}
}
