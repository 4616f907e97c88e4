package testentry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/app/appcontext"
)

// Populate starts a fresh application graph for t and fills targets from it. Each call gets its
// own registry so tests never observe each other's roster changes. The graph is stopped when t
// finishes.
func Populate(t testing.TB, targets ...any) {
	t.Helper()

	opts := app.Options(appcontext.Declare(appcontext.EnvTest))
	// for testing, the fx event log is too noisy, so it is replaced with a NopLogger
	opts = append(opts, fx.NopLogger)
	opts = append(opts, fx.Populate(targets...))
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	fxApp := fxtest.New(t, opts...)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)
}
