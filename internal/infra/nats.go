package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/mergington/activities/internal/app/appconfig"
)

// NATS connects to the configured NATS server. It returns a nil connection when NatsURL is
// empty, in which case roster events are not published.
func NATS(conf *appconfig.Config, lc fx.Lifecycle) (*nats.Conn, error) {
	if conf.NatsURL == "" {
		log.Info().Msg("infra: nats: NATS_URL not set, roster events are disabled")
		return nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	var nc *nats.Conn
	err := retry.Do(
		func() error {
			var err error
			nc, err = nats.Connect(conf.NatsURL,
				nats.Name("mergington-activities"),
				nats.PingInterval(time.Second*20),
				nats.ErrorHandler(errorHandler),
			)
			return err
		},
		retry.Attempts(conf.NatsConnectAttempts),
		retry.Delay(time.Millisecond*500),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("infra: nats: failed to connect to NATS, retrying")
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return nc.Drain()
		},
	})

	return nc, nil
}
