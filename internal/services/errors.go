package services

import (
	"errors"
)

// Sentinel errors returned by the service layer. Handlers map these onto the
// HTTP taxonomy (400/403/404); anything else is an internal failure.
var (
	ErrInvalidTarget   = errors.New("must target exactly one of thread or comment")
	ErrInvalidVote     = errors.New("invalid vote type")
	ErrInvalidReaction = errors.New("invalid reaction type")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrEmptyContent    = errors.New("content is required")
	ErrThreadLocked    = errors.New("thread is locked")
	ErrParentMismatch  = errors.New("parent comment belongs to a different thread")
	ErrQuoteMismatch   = errors.New("quoted comment belongs to a different thread")
	ErrInvalidRole     = errors.New("invalid role")
	ErrSelfDemotion    = errors.New("you cannot demote yourself")
)
