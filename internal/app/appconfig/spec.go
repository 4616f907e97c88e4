package appconfig

import (
	"time"

	"github.com/mergington/activities/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:8000"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of an additional, rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true"`

	// LogFileMaxSizeMB is the size in megabytes a log file could grow to before getting rotated.
	LogFileMaxSizeMB int `split_words:"true" default:"100"`

	// LogFileMaxBackups is the number of rotated log files to retain.
	LogFileMaxBackups int `split_words:"true" default:"5"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the logger goes down to trace level and pprof
	// endpoints are mounted. See internal/server/httpserver/http.go for the actual implementation details.
	DevMode bool `split_words:"true"`

	// CatalogPath is an optional path to a JSON file describing the activities to seed the registry with.
	// Leaving this empty seeds the registry with the built-in Mergington catalog.
	CatalogPath string `split_words:"true"`

	// ListCacheTTL is how long a rendered activity listing is kept before being rebuilt.
	// Any roster change invalidates the listing regardless of this TTL.
	ListCacheTTL time.Duration `split_words:"true" default:"1m"`

	// RateLimitPerMinute caps signup and unregister requests per client IP per minute. A whole class
	// behind one NAT shares an IP, so keep this well above a class size. 0 disables the limit.
	RateLimitPerMinute int `split_words:"true" default:"600"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"jaeger"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// NatsURL is the URL of the NATS server roster events are published to. See
	// https://pkg.go.dev/github.com/nats-io/nats.go#Connect for how to construct a NATS URL.
	// Leaving this empty disables roster event publishing.
	NatsURL string `split_words:"true"`

	// NatsSubjectPrefix is prepended to every roster event subject.
	NatsSubjectPrefix string `split_words:"true" default:"mergington"`

	// NatsConnectAttempts is the number of attempts made to reach NATS at startup.
	NatsConnectAttempts uint `split_words:"true" default:"3"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
