package model

import (
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

// Activity is a named extracurricular offering and its roster.
type Activity struct {
	Name            string   `json:"-" validate:"required,max=64,printable"`
	Description     string   `json:"description" validate:"required"`
	Schedule        string   `json:"schedule" validate:"required"`
	MaxParticipants int      `json:"max_participants" validate:"gte=0"`
	Participants    []string `json:"participants" validate:"unique,dive,required,max=254"`
}

// OverCapacity reports whether the roster holds more participants than MaxParticipants.
// Capacity is informational only and never blocks a signup.
func (a *Activity) OverCapacity() bool {
	return len(a.Participants) > a.MaxParticipants
}

func (a *Activity) HasParticipant(email string) bool {
	return lo.Contains(a.Participants, email)
}

// Clone returns a deep copy of a; the roster slice is never shared with the original.
func (a *Activity) Clone() (*Activity, error) {
	var c Activity
	if err := copier.CopyWithOption(&c, a, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return &c, nil
}

// ActivitySet maps activity names to activities. It renders as a JSON object keyed by name.
type ActivitySet map[string]*Activity
