package domain

import "errors"

var (
	ErrHangoutNotFound = errors.New("hangout not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrCapacityExceeded   = errors.New("offer capacity exhausted")
	ErrOfferNotCollecting = errors.New("offer is no longer collecting")
	ErrAlreadyClaimed     = errors.New("user already holds a claim for this offer")
)

var (
	ErrNotOwner  = errors.New("caller does not own this offer")
	ErrNotMember = errors.New("caller is not a member of this hangout")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrVersionConflict means another writer updated the offer between our read
// and our conditional write. The claim engine retries it; callers that still
// see it should treat the request as retryable.
var ErrVersionConflict = errors.New("offer was modified concurrently")
