package apierr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message, "source error must stay untouched")
	assert.Equal(t, "changed", changedE.Message)
}

func TestWithExtrasDoesNotLeak(t *testing.T) {
	e := ErrNotSignedUp.WithExtras(Extras{"email": "a@mergington.edu"})
	assert.Nil(t, ErrNotSignedUp.Extras)
	assert.Equal(t, "a@mergington.edu", (*e.Extras)["email"])
	assert.Equal(t, ErrNotSignedUp.StatusCode, e.StatusCode)
}

func TestInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"email"})
	assert.Equal(t, 400, e.StatusCode)
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.Nil(t, ErrInvalidReq.Extras)
	assert.Equal(t, []string{"email"}, (*e.Extras)["violations"])
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: Activity not found", ErrActivityNotFound.Error())
}
