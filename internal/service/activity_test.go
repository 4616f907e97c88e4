package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/app/appconfig"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/pkg/apierr"
	"github.com/mergington/activities/internal/repo"
)

func newTestActivity(t *testing.T, catalog []*model.Activity) *Activity {
	t.Helper()

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{ListCacheTTL: time.Minute}}
	r, err := repo.NewActivityFromCatalog(catalog)
	require.NoError(t, err)
	return NewActivity(conf, r, NewRosterEvent(conf, nil))
}

func TestActivitySignUpRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestActivity(t, repo.DefaultCatalog())
	const email = "cycle_test@mergington.edu"

	activities, err := s.GetActivities(ctx)
	require.NoError(t, err)
	assert.NotContains(t, activities["Debate Team"].Participants, email)

	require.NoError(t, s.SignUp(ctx, "Debate Team", email))

	activities, err = s.GetActivities(ctx)
	require.NoError(t, err)
	assert.Contains(t, activities["Debate Team"].Participants, email, "listing must not be served from a stale cache")

	require.NoError(t, s.Unregister(ctx, "Debate Team", email))

	activities, err = s.GetActivities(ctx)
	require.NoError(t, err)
	assert.NotContains(t, activities["Debate Team"].Participants, email)
}

func TestActivityErrorMapping(t *testing.T) {
	ctx := context.Background()
	s := newTestActivity(t, repo.DefaultCatalog())

	testCases := []struct {
		name   string
		action func() error
		expect *apierr.Error
	}{
		{
			name:   "signup unknown activity",
			action: func() error { return s.SignUp(ctx, "Nonexistent Club", "student@mergington.edu") },
			expect: apierr.ErrActivityNotFound,
		},
		{
			name:   "signup duplicate",
			action: func() error { return s.SignUp(ctx, "Chess Club", "michael@mergington.edu") },
			expect: apierr.ErrAlreadySignedUp,
		},
		{
			name:   "unregister unknown activity",
			action: func() error { return s.Unregister(ctx, "Nonexistent Club", "student@mergington.edu") },
			expect: apierr.ErrActivityNotFound,
		},
		{
			name:   "unregister non member",
			action: func() error { return s.Unregister(ctx, "Chess Club", "stranger@mergington.edu") },
			expect: apierr.ErrNotSignedUp,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.action()
			var apiErr *apierr.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.expect.StatusCode, apiErr.StatusCode)
			assert.Equal(t, tc.expect.ErrorCode, apiErr.ErrorCode)
			assert.Equal(t, tc.expect.Message, apiErr.Message)
		})
	}
}

func TestActivityOverCapacityIsReportedNotEnforced(t *testing.T) {
	ctx := context.Background()
	s := newTestActivity(t, []*model.Activity{{
		Name:            "Tiny Club",
		Description:     "Two seats",
		Schedule:        "Lunch break",
		MaxParticipants: 2,
		Participants:    []string{"one@mergington.edu", "two@mergington.edu"},
	}})

	require.NoError(t, s.SignUp(ctx, "Tiny Club", "three@mergington.edu"))
	require.NoError(t, s.SignUp(ctx, "Tiny Club", "four@mergington.edu"))

	activities, err := s.GetActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, activities["Tiny Club"].Participants, 4)
	assert.Equal(t, 2, activities["Tiny Club"].MaxParticipants)
}

func TestActivityListingIsCachedUntilChange(t *testing.T) {
	ctx := context.Background()
	s := newTestActivity(t, repo.DefaultCatalog())

	first, err := s.GetActivities(ctx)
	require.NoError(t, err)
	second, err := s.GetActivities(ctx)
	require.NoError(t, err)
	assert.Same(t, first["Chess Club"], second["Chess Club"], "unchanged registry should be served from cache")

	require.NoError(t, s.SignUp(ctx, "Chess Club", "cached@mergington.edu"))

	third, err := s.GetActivities(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first["Chess Club"], third["Chess Club"])
	assert.Contains(t, third["Chess Club"].Participants, "cached@mergington.edu")
}

func TestActivityLastModifiedAdvances(t *testing.T) {
	ctx := context.Background()
	s := newTestActivity(t, repo.DefaultCatalog())

	before := s.LastModified()
	require.NoError(t, s.SignUp(ctx, "Gym Class", "late@mergington.edu"))
	assert.False(t, s.LastModified().Before(before))
}
