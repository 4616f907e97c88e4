package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/app/appconfig"
	"github.com/mergington/activities/internal/constant"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/pkg/apierr"
	"github.com/mergington/activities/internal/pkg/cache"
	"github.com/mergington/activities/internal/pkg/observability"
	"github.com/mergington/activities/internal/repo"
)

type Activity struct {
	ActivityRepo *repo.Activity
	RosterEvent  *RosterEvent

	listCache    *cache.Singular[activityListing]
	listCacheTTL time.Duration
}

type activityListing struct {
	Activities model.ActivitySet
	Version    uint64
}

func NewActivity(conf *appconfig.Config, activityRepo *repo.Activity, rosterEvent *RosterEvent) *Activity {
	return &Activity{
		ActivityRepo: activityRepo,
		RosterEvent:  rosterEvent,
		listCache:    cache.NewSingular[activityListing]("activities"),
		listCacheTTL: conf.ListCacheTTL,
	}
}

// Cache: (singular) activities, ListCacheTTL; dropped on every roster change, and ignored when
// taken at an older registry version.
// The returned set is shared between callers and must be treated as read-only.
func (s *Activity) GetActivities(ctx context.Context) (model.ActivitySet, error) {
	var listing activityListing
	if err := s.listCache.Get(&listing); err == nil {
		if listing.Version == s.ActivityRepo.Version() {
			return listing.Activities, nil
		}
		_ = s.listCache.Delete()
	}

	err := s.listCache.MutexGetSet(&listing, func() (activityListing, error) {
		activities, version, err := s.ActivityRepo.Snapshot(ctx)
		return activityListing{Activities: activities, Version: version}, err
	}, s.listCacheTTL)
	if err != nil {
		return nil, err
	}
	if listing.Version != s.ActivityRepo.Version() {
		// a roster changed while the listing was being filled
		activities, _, err := s.ActivityRepo.Snapshot(ctx)
		return activities, err
	}
	return listing.Activities, nil
}

func (s *Activity) LastModified() time.Time {
	return s.ActivityRepo.LastModified()
}

func (s *Activity) SignUp(ctx context.Context, name, email string) error {
	a, err := s.ActivityRepo.AddParticipant(ctx, name, email)
	if err != nil {
		return s.rejected(constant.OperationSignUp, err)
	}
	s.changed(ctx, constant.OperationSignUp, name, email)

	if a.OverCapacity() {
		// reported, never enforced
		observability.RosterOverCapacity.WithLabelValues(name).Inc()
		log.Ctx(ctx).Warn().
			Str("evt.name", "roster.over_capacity").
			Str("activity", name).
			Int("participants", len(a.Participants)).
			Int("max_participants", a.MaxParticipants).
			Msg("activity roster exceeds max_participants")
	}

	s.RosterEvent.Publish(ctx, constant.SubjectMemberJoined, name, email, constant.OperationSignUp)
	return nil
}

func (s *Activity) Unregister(ctx context.Context, name, email string) error {
	if _, err := s.ActivityRepo.RemoveParticipant(ctx, name, email); err != nil {
		return s.rejected(constant.OperationUnregister, err)
	}
	s.changed(ctx, constant.OperationUnregister, name, email)

	s.RosterEvent.Publish(ctx, constant.SubjectMemberLeft, name, email, constant.OperationUnregister)
	return nil
}

func (s *Activity) changed(ctx context.Context, operation, name, email string) {
	if err := s.listCache.Delete(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to invalidate activity list cache")
	}
	observability.RosterChanges.WithLabelValues(name, operation).Inc()
	log.Ctx(ctx).Info().
		Str("evt.name", "roster."+operation).
		Str("activity", name).
		Str("email", email).
		Msg("roster changed")
}

// rejected maps registry errors onto API errors.
func (s *Activity) rejected(operation string, err error) error {
	var apiErr *apierr.Error
	switch {
	case errors.Is(err, repo.ErrActivityNotFound):
		apiErr = apierr.ErrActivityNotFound
	case errors.Is(err, repo.ErrAlreadySignedUp):
		apiErr = apierr.ErrAlreadySignedUp
	case errors.Is(err, repo.ErrNotSignedUp):
		apiErr = apierr.ErrNotSignedUp
	default:
		return err
	}
	observability.RosterRejections.WithLabelValues(operation, apiErr.ErrorCode).Inc()
	return apiErr
}
