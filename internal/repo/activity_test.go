package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/model"
)

func newTestRegistry(t *testing.T) *Activity {
	t.Helper()

	r, err := NewActivityFromCatalog(DefaultCatalog())
	require.NoError(t, err)
	return r
}

func TestActivityGetActivities(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)

	set, err := r.GetActivities(ctx)
	require.NoError(t, err)

	assert.Len(t, set, len(DefaultCatalog()))
	for _, name := range []string{"Chess Club", "Programming Class", "Gym Class"} {
		a, ok := set[name]
		require.True(t, ok, "missing %s", name)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Schedule)
		assert.NotNil(t, a.Participants)
	}
}

func TestActivitySnapshotIsIsolated(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)

	set, err := r.GetActivities(ctx)
	require.NoError(t, err)

	set["Chess Club"].Participants[0] = "tampered@mergington.edu"
	set["Chess Club"].Participants = append(set["Chess Club"].Participants, "extra@mergington.edu")
	delete(set, "Gym Class")

	fresh, err := r.GetActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, fresh["Chess Club"].Participants)
	assert.Contains(t, fresh, "Gym Class")
}

func TestActivityAddParticipant(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)
	before := r.LastModified()

	a, err := r.AddParticipant(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "newstudent@mergington.edu"}, a.Participants)
	assert.False(t, r.LastModified().Before(before))

	_, err = r.AddParticipant(ctx, "Chess Club", "newstudent@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)

	_, err = r.AddParticipant(ctx, "Nonexistent Club", "newstudent@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)

	got, err := r.GetActivityByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Len(t, got.Participants, 3, "a rejected signup must not touch the roster")
}

func TestActivityRemoveParticipant(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)

	_, err := r.RemoveParticipant(ctx, "Art Studio", "nobody@mergington.edu")
	assert.ErrorIs(t, err, ErrNotSignedUp)

	_, err = r.RemoveParticipant(ctx, "Nonexistent Club", "mia@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)

	a, err := r.RemoveParticipant(ctx, "Art Studio", "mia@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"noah@mergington.edu"}, a.Participants)

	a, err = r.RemoveParticipant(ctx, "Art Studio", "noah@mergington.edu")
	require.NoError(t, err)
	assert.NotNil(t, a.Participants)
	assert.Empty(t, a.Participants)
}

func TestActivityCapacityIsNotEnforced(t *testing.T) {
	ctx := context.Background()
	r, err := NewActivityFromCatalog([]*model.Activity{{
		Name:            "Tiny Club",
		Description:     "Only one seat",
		Schedule:        "Never",
		MaxParticipants: 1,
		Participants:    []string{"first@mergington.edu"},
	}})
	require.NoError(t, err)

	a, err := r.AddParticipant(ctx, "Tiny Club", "second@mergington.edu")
	require.NoError(t, err)
	assert.True(t, a.OverCapacity())
	assert.Len(t, a.Participants, 2)
}

func TestActivityConcurrentSignups(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)

	const email = "racer@mergington.edu"
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.AddParticipant(ctx, "Science Club", email); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	a, err := r.GetActivityByName(ctx, "Science Club")
	require.NoError(t, err)
	assert.Equal(t, 1, countOf(a.Participants, email))
}

func countOf(s []string, v string) (n int) {
	for _, e := range s {
		if e == v {
			n++
		}
	}
	return
}

func TestActivityNamesKeepCatalogOrder(t *testing.T) {
	r := newTestRegistry(t)

	names := r.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "Chess Club", names[0])

	names[0] = "mutated"
	assert.Equal(t, "Chess Club", r.Names()[0])
}
