package repo

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mergington/activities/internal/app/appconfig"
	"github.com/mergington/activities/internal/model"
)

// Activity is the in-memory activity registry. Activities are fixed at construction;
// only their rosters change afterwards.
type Activity struct {
	mu sync.RWMutex

	activities   map[string]*model.Activity
	names        []string
	version      uint64
	lastModified time.Time
}

func NewActivity(conf *appconfig.Config) (*Activity, error) {
	var (
		catalog []*model.Activity
		err     error
	)
	if conf.CatalogPath != "" {
		catalog, err = LoadCatalog(conf.CatalogPath)
		if err != nil {
			return nil, err
		}
	} else {
		catalog = DefaultCatalog()
	}

	r, err := NewActivityFromCatalog(catalog)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("evt.name", "repo.activity.seeded").
		Int("count", len(r.names)).
		Str("source", lo.Ternary(conf.CatalogPath == "", "builtin", conf.CatalogPath)).
		Msg("activity registry seeded")

	return r, nil
}

// NewActivityFromCatalog seeds a registry with deep copies of catalog.
func NewActivityFromCatalog(catalog []*model.Activity) (*Activity, error) {
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}

	r := &Activity{
		activities:   make(map[string]*model.Activity, len(catalog)),
		names:        make([]string, 0, len(catalog)),
		lastModified: time.Now(),
	}
	for _, a := range catalog {
		c, err := a.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "repo: failed to copy activity %q", a.Name)
		}
		r.activities[c.Name] = c
		r.names = append(r.names, c.Name)
	}
	return r, nil
}

// GetActivities returns a snapshot of every activity. The snapshot shares no memory with the registry.
func (r *Activity) GetActivities(ctx context.Context) (model.ActivitySet, error) {
	set, _, err := r.Snapshot(ctx)
	return set, err
}

// Snapshot is GetActivities plus the registry version the snapshot was taken at.
func (r *Activity) Snapshot(ctx context.Context) (model.ActivitySet, uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := make(model.ActivitySet, len(r.activities))
	for name, a := range r.activities {
		c, err := a.Clone()
		if err != nil {
			return nil, 0, errors.Wrapf(err, "repo: failed to copy activity %q", name)
		}
		set[name] = c
	}
	return set, r.version, nil
}

// Version increases by one on every roster change.
func (r *Activity) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.version
}

func (r *Activity) GetActivityByName(ctx context.Context, name string) (*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return a.Clone()
}

// Names returns activity names in catalog order.
func (r *Activity) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.names...)
}

// AddParticipant appends email to the roster of the named activity and returns a copy of
// the activity as it is after the change.
func (r *Activity) AddParticipant(ctx context.Context, name, email string) (*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return nil, ErrAlreadySignedUp
	}

	a.Participants = append(a.Participants, email)
	r.touch()

	return a.Clone()
}

// RemoveParticipant drops email from the roster of the named activity, keeping the order of
// the remaining participants.
func (r *Activity) RemoveParticipant(ctx context.Context, name, email string) (*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	if !a.HasParticipant(email) {
		return nil, ErrNotSignedUp
	}

	a.Participants = lo.Without(a.Participants, email)
	r.touch()

	return a.Clone()
}

// LastModified is the time of the last roster change, or of seeding if nothing changed since.
func (r *Activity) LastModified() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lastModified
}

func (r *Activity) touch() {
	r.version++
	r.lastModified = time.Now()
}
