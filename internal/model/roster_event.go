package model

import "time"

// RosterEvent is published whenever a participant joins or leaves an activity.
type RosterEvent struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Operation  string    `json:"operation"`
	OccurredAt time.Time `json:"occurred_at"`
	// RequestID is the id of the HTTP request that changed the roster, if any.
	RequestID string `json:"request_id,omitempty"`
}
