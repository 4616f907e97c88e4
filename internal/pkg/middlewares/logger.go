package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/constant"
	"github.com/mergington/activities/internal/pkg/flog"
)

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", constant.RequestIDHeader),
		flog.RemoteAddrHandler("ip"),
		flog.MethodHandler("method"),
		flog.URLHandler("url"),
		flog.UserAgentHandler("user_agent"),
		flog.AccessHandler(logRequest),
		renderError,
	)
}

func logRequest(ctx *fiber.Ctx, duration time.Duration) {
	flog.InfoFrom(ctx).
		Str("component", "httpreq").
		Int("status", ctx.Response().StatusCode()).
		Int("size", len(ctx.Response().Body())).
		Dur("duration", duration).
		Msg("received request")
}

// renderError runs the error handler inside the chain so the access log carries the final status.
func renderError(ctx *fiber.Ctx) error {
	if err := ctx.Next(); err != nil {
		if herr := ctx.App().ErrorHandler(ctx, err); herr != nil {
			_ = ctx.SendStatus(fiber.StatusInternalServerError)
		}
	}
	return nil
}
