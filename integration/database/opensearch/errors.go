package opensearch

import "errors"

var (
	// ErrConnectionFailed indicates the client could not be created from
	// the given configuration.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed indicates the cluster did not answer an info
	// request.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
