// Package middleware provides authentication, logging, and metrics middleware
// for the application.
package middleware

import (
	"strings"

	"postboard/internal/models"
	"postboard/internal/token"

	"github.com/gofiber/fiber/v2"
)

var tokens *token.Service

// InitAuth wires the token service into the auth middleware. Must be called
// once at startup before any protected route is served.
func InitAuth(t *token.Service) {
	tokens = t
}

// AuthRequired is a middleware that enforces bearer authentication for
// protected routes. The three failure modes are distinct and checked in
// order: missing header, wrong scheme, unverifiable token. All respond 403.
// Handlers additionally re-check the extracted user ID and answer 401 there.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Authorization header missing"))
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Invalid authentication scheme"))
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Invalid or expired token"))
	}

	c.Locals("userID", claims.UserID)

	return c.Next()
}

// CurrentUserID extracts the authenticated user ID set by AuthRequired.
// Returns 0, false when the request carries no verified identity; handlers
// treat that as 401 even behind AuthRequired, as a second independent check.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
