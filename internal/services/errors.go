package services

import "errors"

// Sentinel errors for the client-facing failure modes. Handlers map these
// to 404/400; everything else is a server fault.
var (
	ErrJobNotFound    = errors.New("job posting not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
)
