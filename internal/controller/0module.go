package controller

import (
	"go.uber.org/fx"

	controlleractivities "github.com/mergington/activities/internal/controller/activities"
	controllermeta "github.com/mergington/activities/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (activities)
		controlleractivities.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
