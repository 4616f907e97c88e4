package httpserver

import (
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mergington/activities/internal/app/appconfig"
	"github.com/mergington/activities/internal/constant"
	"github.com/mergington/activities/internal/pkg/apierr"
	"github.com/mergington/activities/internal/pkg/bininfo"
	"github.com/mergington/activities/internal/pkg/fiberstore"
	"github.com/mergington/activities/internal/pkg/middlewares"
	"github.com/mergington/activities/internal/pkg/observability"
	"github.com/mergington/activities/web"
)

var (
	fiberpromOnce sync.Once
	fiberprom     *fiberprometheus.FiberPrometheus
)

// httpMetrics returns the process-wide fiberprometheus collectors. They live in the default
// registry, so they are created once and shared by every app built in the process.
func httpMetrics() *fiberprometheus.FiberPrometheus {
	fiberpromOnce.Do(func() {
		fiberprom = fiberprometheus.New(observability.ServiceName)
	})
	return fiberprom
}

const MetricsPath = "/metrics"

func Create(conf *appconfig.Config, tp *tracesdk.TracerProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Mergington High School Activities",
		ServerHeader: fmt.Sprintf("Mergington/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		Immutable:               true,
		// activity names contain spaces and arrive percent-encoded
		UnescapePath: true,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, POST, OPTIONS",
		AllowHeaders:  "Content-Type, Accept-Language, X-Requested-With, sentry-trace",
		ExposeHeaders: "Content-Type, " + constant.RequestIDHeader,
	}))
	middlewares.Logger(app)
	// the logger chain puts the request id into the user context;
	// copy it into ctx.Locals for sentry and handlers
	app.Use(middlewares.RequestID())

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:            31356000,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'none'",
		PermissionPolicy:      "interest-cohort=()",
	}))
	app.Use(middlewares.InjectI18n())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	prom := httpMetrics()
	prom.RegisterAt(app, MetricsPath)
	app.Use(prom.Middleware)

	if tp != nil {
		app.Use(otelfiber.Middleware(
			otelfiber.WithTracerProvider(tp),
			otelfiber.WithServerName(observability.ServiceName),
		))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
	} else {
		app.Use(middlewares.EnrichSentry())
	}

	if conf.RateLimitPerMinute > 0 {
		app.Use(limiter.New(limiter.Config{
			// only roster mutations are limited; listing is served from cache
			Next: func(c *fiber.Ctx) bool {
				return c.Method() != fiber.MethodPost
			},
			LimitReached: func(c *fiber.Ctx) error {
				return apierr.New(fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many signup requests, please slow down")
			},
			Max:        conf.RateLimitPerMinute,
			Expiration: time.Minute,
			Storage:    fiberstore.NewMemory(time.Minute),
		}))
	}

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Static),
		PathPrefix: "static",
		MaxAge:     3600,
	}))

	return app
}
