package service

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/app/appconfig"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/pkg/flog"
	"github.com/mergington/activities/internal/pkg/observability"
)

// RosterEvent publishes roster changes to NATS. With no connection configured every publish is a no-op.
type RosterEvent struct {
	NATS   *nats.Conn
	prefix string
}

func NewRosterEvent(conf *appconfig.Config, nc *nats.Conn) *RosterEvent {
	return &RosterEvent{
		NATS:   nc,
		prefix: conf.NatsSubjectPrefix,
	}
}

func (s *RosterEvent) Enabled() bool {
	return s != nil && s.NATS != nil
}

func (s *RosterEvent) subject(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "." + name
}

// Publish sends a roster event on subject. Failures are logged and counted, never returned.
func (s *RosterEvent) Publish(ctx context.Context, subject string, activity, email, operation string) {
	if !s.Enabled() {
		return
	}

	subj := s.subject(subject)
	evt := &model.RosterEvent{
		Activity:   activity,
		Email:      email,
		Operation:  operation,
		OccurredAt: time.Now().UTC(),
	}
	if id, ok := flog.IDFromCtx(ctx); ok {
		evt.RequestID = id.String()
	}
	b, err := json.Marshal(evt)
	if err == nil {
		err = s.NATS.Publish(subj, b)
	}
	if err != nil {
		observability.RosterEventPublishFailures.WithLabelValues(subj).Inc()
		log.Ctx(ctx).Error().
			Err(err).
			Str("evt.name", "roster.event.publish").
			Str("subject", subj).
			Msg("failed to publish roster event")
	}
}
