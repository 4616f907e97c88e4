package activities

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mergington/activities/internal/model/types"
	"github.com/mergington/activities/internal/pkg/cachectrl"
	"github.com/mergington/activities/internal/pkg/middlewares"
	"github.com/mergington/activities/internal/server/svr"
	"github.com/mergington/activities/internal/service"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterActivity(activities *svr.Activities, c Activity) {
	activities.Get("", c.GetActivities)
	activities.Post("/:name/signup", middlewares.ValidateRosterRequest, c.SignUp)
	activities.Post("/:name/unregister", middlewares.ValidateRosterRequest, c.Unregister)
}

// GetActivities renders the whole registry keyed by activity name. The listing is never cacheable
// by clients since rosters change under it.
func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	activities, err := c.ActivityService.GetActivities(ctx.UserContext())
	if err != nil {
		return err
	}
	cachectrl.OptOut(ctx, c.ActivityService.LastModified())
	return ctx.JSON(activities)
}

func (c *Activity) SignUp(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	req := ctx.Locals(types.RosterRequestKey).(*types.RosterRequest)

	if err := c.ActivityService.SignUp(ctx.UserContext(), name, req.Email); err != nil {
		return err
	}

	return ctx.JSON(types.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, name),
	})
}

func (c *Activity) Unregister(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	req := ctx.Locals(types.RosterRequestKey).(*types.RosterRequest)

	if err := c.ActivityService.Unregister(ctx.UserContext(), name, req.Email); err != nil {
		return err
	}

	return ctx.JSON(types.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, name),
	})
}
