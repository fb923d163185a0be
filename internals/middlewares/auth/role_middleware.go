package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice rejects with 403 unless the active org role is listed.
func OnlyRolesSlice(message string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("org_role").(string)
		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}
