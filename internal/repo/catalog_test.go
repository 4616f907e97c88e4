package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/model"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	assert.NoError(t, ValidateCatalog(DefaultCatalog()))
}

func TestValidateCatalog(t *testing.T) {
	valid := func() *model.Activity {
		return &model.Activity{
			Name:            "Robotics",
			Description:     "Build robots",
			Schedule:        "Saturdays",
			MaxParticipants: 8,
			Participants:    []string{"a@mergington.edu"},
		}
	}

	testCases := []struct {
		name   string
		mutate func(a *model.Activity)
	}{
		{"missing name", func(a *model.Activity) { a.Name = "" }},
		{"missing description", func(a *model.Activity) { a.Description = "" }},
		{"negative capacity", func(a *model.Activity) { a.MaxParticipants = -1 }},
		{"empty participant", func(a *model.Activity) { a.Participants = []string{""} }},
		{"duplicated participant", func(a *model.Activity) {
			a.Participants = []string{"a@mergington.edu", "a@mergington.edu"}
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := valid()
			tc.mutate(a)
			assert.Error(t, ValidateCatalog([]*model.Activity{a}))
		})
	}

	t.Run("duplicated name", func(t *testing.T) {
		assert.Error(t, ValidateCatalog([]*model.Activity{valid(), valid()}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Error(t, ValidateCatalog(nil))
	})
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
		"Robotics": {
			"description": "Build robots",
			"schedule": "Saturdays, 10:00 AM - 12:00 PM",
			"max_participants": 8,
			"participants": ["a@mergington.edu"]
		},
		"Choir": {
			"description": "Sing together",
			"schedule": "Mondays, 3:30 PM - 4:30 PM",
			"max_participants": 40,
			"participants": []
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "Choir", catalog[0].Name)
	assert.Equal(t, "Robotics", catalog[1].Name)
	assert.Equal(t, 8, catalog[1].MaxParticipants)

	r, err := NewActivityFromCatalog(catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"Choir", "Robotics"}, r.Names())
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Robotics": `), 0o644))
	_, err = LoadCatalog(path)
	assert.Error(t, err)
}
