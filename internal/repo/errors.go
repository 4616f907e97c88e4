package repo

import "github.com/pkg/errors"

var (
	ErrActivityNotFound = errors.New("repo: activity not found")
	ErrAlreadySignedUp  = errors.New("repo: participant already signed up")
	ErrNotSignedUp      = errors.New("repo: participant not signed up")
)
