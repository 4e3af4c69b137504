package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/models"
)

// RequireRole admits only accounts of the given type. The role travels in the
// JWT claims, so no database round trip is needed here; handlers that act on
// profile rows still resolve them by user ID.
func RequireRole(role models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		if models.UserType(current) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		return c.Next()
	}
}
