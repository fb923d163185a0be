package features

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UseOrgScope requires an active organization in the token and parses it
// into locals as uuid. Every tenant-owned query reads org_id from here.
func UseOrgScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, _ := c.Locals("org_id").(string)
		if raw == "" {
			return fiber.NewError(fiber.StatusForbidden, "No active organization in token")
		}
		orgID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Invalid organization ID in token")
		}
		c.Locals("org_uuid", orgID)
		return c.Next()
	}
}

// OrgIDFromLocals returns the active organization set by UseOrgScope.
func OrgIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals("org_uuid").(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	raw, _ := c.Locals("org_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No active organization in token")
	}
	return id, nil
}
