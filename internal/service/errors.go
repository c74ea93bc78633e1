package service

import "errors"

// Domain errors surfaced to the HTTP edge. Controllers map these to
// status codes with errors.Is; anything else becomes a 500.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmployerNotFound = errors.New("employer not found")
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrJobNotFound      = errors.New("job not found")

	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("incorrect password")

	// Job lifecycle violations
	ErrJobNotOpen     = errors.New("job is not open for applications")
	ErrAlreadyApplied = errors.New("worker already applied to this job")
	ErrAlreadyAwarded = errors.New("job is already awarded")
	ErrNotApplied     = errors.New("worker has not applied to this job")

	ErrInsufficientCredit = errors.New("credit cannot go negative")
)
