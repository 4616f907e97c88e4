package apierr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadySignedUp = "ALREADY_SIGNED_UP"
	CodeNotSignedUp     = "NOT_SIGNED_UP"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInternalError   = "INTERNAL_ERROR"
)

var (
	// ErrActivityNotFound is returned when the requested activity is not in the catalog.
	ErrActivityNotFound = New(fiber.StatusNotFound, CodeNotFound, "Activity not found")

	// ErrAlreadySignedUp is returned when the email is already on the roster.
	ErrAlreadySignedUp = New(fiber.StatusBadRequest, CodeAlreadySignedUp, "Student is already signed up")

	// ErrNotSignedUp is returned when unregistering an email that is not on the roster.
	ErrNotSignedUp = New(fiber.StatusBadRequest, CodeNotSignedUp, "Student is not signed up for this activity")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type Error struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"code" example:"NOT_FOUND"`
	Message    string `json:"detail" example:"Activity not found"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...any) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *Error {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
