package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mergington/activities/internal/model/types"
	"github.com/mergington/activities/internal/util/rekuest"
)

// ValidateRosterRequest rejects roster mutations whose query does not carry a valid email.
func ValidateRosterRequest(c *fiber.Ctx) error {
	var req types.RosterRequest
	if err := rekuest.ValidQuery(c, &req); err != nil {
		return err
	}
	c.Locals(types.RosterRequestKey, &req)
	return c.Next()
}
