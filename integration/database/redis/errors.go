package redis

import "errors"

var (
	// ErrEmptyConnectionURL indicates a missing Redis connection URL.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")

	// ErrInvalidConnectionURL indicates the URL could not be parsed.
	ErrInvalidConnectionURL = errors.New("invalid redis connection URL")

	// ErrNotReady indicates Redis did not answer a ping within the
	// configured retry budget.
	ErrNotReady = errors.New("redis did not become ready")

	// ErrHealthcheckFailed indicates a ping failure on an established
	// client.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
