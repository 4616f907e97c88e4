package types

// RosterRequestKey is the ctx.Locals key a validated RosterRequest is stored under.
const RosterRequestKey = "rosterRequest"

type RosterRequest struct {
	Email string `query:"email" validate:"required,max=254"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
