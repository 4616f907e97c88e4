package activities

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controller.activities", fx.Invoke(
		RegisterActivity,
	))
}
