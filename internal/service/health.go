package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/mergington/activities/internal/repo"
)

var (
	ErrRegistryEmpty    = errors.New("activity registry is empty")
	ErrNATSNotReachable = errors.New("nats not reachable")
)

type Health struct {
	ActivityRepo *repo.Activity
	RosterEvent  *RosterEvent
}

func NewHealth(activityRepo *repo.Activity, rosterEvent *RosterEvent) *Health {
	return &Health{
		ActivityRepo: activityRepo,
		RosterEvent:  rosterEvent,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if len(s.ActivityRepo.Names()) == 0 {
		return ErrRegistryEmpty
	}

	if s.RosterEvent.Enabled() {
		// nats pings the server every 20 seconds on its own (configured in infra/nats.go)
		status := s.RosterEvent.NATS.Status()
		if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
			return errors.Wrap(ErrNATSNotReachable, status.String())
		}
	}

	return nil
}
