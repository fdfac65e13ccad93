package device

import "errors"

var (
	// ErrRecordNotFound indicates a lookup for an id the store does not hold.
	ErrRecordNotFound = errors.New("device record not found")

	// ErrStoreUnavailable indicates the backing storage could not be read.
	ErrStoreUnavailable = errors.New("device store unavailable")
)
