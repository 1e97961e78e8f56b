package usecase

import "errors"

var (
	// ErrUserNotConfigured means the name is not part of the fixed roster.
	ErrUserNotConfigured = errors.New("user is not configured for the challenge")

	// ErrInvalidActivitySet means a submission carried missing or unknown
	// activity ids. Rejected at the boundary, before scoring.
	ErrInvalidActivitySet = errors.New("activity set must contain exactly the five known activities")
)
