package middleware

import (
	"log"
	"strings"

	"foodcourt/internal/models"
	"foodcourt/internal/services"

	"github.com/gofiber/fiber/v2"
)

// identityKey is the fiber.Ctx locals key holding the request identity.
const identityKey = "identity"

// AuthRequired is a Fiber middleware that validates the bearer token and
// stores the caller's identity (id, role, country) in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		ident, err := services.IdentityFromClaims(claims)
		if err != nil {
			log.Printf("JWT claims rejected: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthRequired.
func CurrentIdentity(c *fiber.Ctx) (models.Identity, bool) {
	ident, ok := c.Locals(identityKey).(models.Identity)
	return ident, ok
}
