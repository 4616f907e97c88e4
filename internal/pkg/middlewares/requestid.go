package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mergington/activities/internal/constant"
	"github.com/mergington/activities/internal/pkg/flog"
)

// RequestID copies the id assigned by the logger chain into ctx.Locals for handlers that
// do not have access to the user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
