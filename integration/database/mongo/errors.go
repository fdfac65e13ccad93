package mongo

import "errors"

var (
	// ErrEmptyConnectionURL indicates a missing MongoDB connection URL.
	ErrEmptyConnectionURL = errors.New("empty mongodb connection URL")

	// ErrNotReady indicates MongoDB did not answer a ping within the
	// configured retry budget.
	ErrNotReady = errors.New("mongodb did not become ready")

	// ErrHealthcheckFailed indicates a ping failure on an established
	// client.
	ErrHealthcheckFailed = errors.New("mongodb healthcheck failed")
)
