package repo

import (
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/util/i18n"
	"github.com/mergington/activities/internal/util/rekuest"
)

// DefaultCatalog returns a fresh copy of the built-in Mergington High School catalog.
func DefaultCatalog() []*model.Activity {
	return []*model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice drills and compete in inter-school basketball games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Improve your serve and play singles and doubles matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"ava@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing and sculpture in an open studio",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Build public speaking and argumentation skills through competitive debate",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Hands-on experiments and preparation for the regional science fair",
			Schedule:        "Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ethan@mergington.edu", "amelia@mergington.edu"},
		},
	}
}

// LoadCatalog reads a catalog file. The file uses the same shape as the GET /activities
// response: a JSON object keyed by activity name. Activities are ordered by name.
func LoadCatalog(path string) ([]*model.Activity, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "repo: failed to read catalog file")
	}

	var set model.ActivitySet
	if err := json.Unmarshal(b, &set); err != nil {
		return nil, errors.Wrapf(err, "repo: failed to parse catalog file %s", path)
	}

	catalog := make([]*model.Activity, 0, len(set))
	for name, a := range set {
		if a == nil {
			return nil, errors.Errorf("repo: catalog entry %q is null", name)
		}
		a.Name = name
		catalog = append(catalog, a)
	}
	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].Name < catalog[j].Name
	})

	return catalog, nil
}

// ValidateCatalog checks every entry of catalog and rejects duplicated names.
func ValidateCatalog(catalog []*model.Activity) error {
	if len(catalog) == 0 {
		return errors.New("repo: catalog is empty")
	}

	seen := make(map[string]struct{}, len(catalog))
	for i, a := range catalog {
		if a == nil {
			return errors.Errorf("repo: catalog entry #%d is nil", i)
		}
		violations, err := rekuest.Struct(i18n.UT.GetFallback(), a)
		if err != nil {
			return errors.Wrapf(err, "repo: failed to validate activity %q", a.Name)
		}
		if len(violations) > 0 {
			v := violations[0]
			return errors.Errorf("repo: invalid activity %q: %s", a.Name, v.Message)
		}
		if _, dup := seen[a.Name]; dup {
			return errors.Errorf("repo: duplicated activity %q", a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}
