package httpserver

import (
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/mergington/activities/internal/constant"
	"github.com/mergington/activities/internal/pkg/apierr"
	"github.com/mergington/activities/internal/pkg/flog"
)

func handleCustomError(ctx *fiber.Ctx, e *apierr.Error) error {
	flog.WarnFrom(ctx).
		Err(e).
		Int("status", e.StatusCode).
		Msg(e.Message)

	body := fiber.Map{
		"code":   e.ErrorCode,
		"detail": e.Message,
	}

	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		return handleCustomError(ctx, apiErr)
	}

	// routing errors (404 on unknown paths, 405, ...) keep their status
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return handleCustomError(ctx, apierr.New(fiberErr.Code, "UNKNOWN_ERROR", fiberErr.Message))
	}

	flog.FromFiberCtx(ctx).Error().
		Stack().
		Err(err).
		Int("status", apierr.ErrInternalError.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(apierr.ErrInternalError.StatusCode))
		if id, ok := ctx.Locals(constant.ContextKeyRequestID).(string); ok {
			hub.Scope().SetTag("request_id", id)
		}
		hub.CaptureException(err)
	} else {
		sentry.CaptureException(err)
	}

	return handleCustomError(ctx, apierr.ErrInternalError)
}
