// Package errs contains sentinel errors and the structured domain error used across layers.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates there is no valid, active principal in the session.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized indicates the principal lacks permission for the action on the resource.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrCart indicates a pricing precondition was violated.
	ErrCart = errors.New("cart")

	// ErrLicensingConflict indicates an illegal license state transition.
	ErrLicensingConflict = errors.New("licensing conflict")

	// ErrPipeline indicates a downstream step failed after an irreversible one (payment) succeeded.
	ErrPipeline = errors.New("pipeline")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)
