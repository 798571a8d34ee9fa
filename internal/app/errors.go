package service

import "errors"

// Sentinel kinds for matchmaking errors.
var (
	// ErrBriefNotFound means the referenced brief does not exist.
	ErrBriefNotFound = errors.New("brief not found")

	// ErrForbidden means the requester does not own the brief.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCategory means an unknown asset category was requested.
	ErrInvalidCategory = errors.New("invalid asset category")
)
