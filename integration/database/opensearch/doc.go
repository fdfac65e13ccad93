// Package opensearch provides configuration-driven OpenSearch client
// initialization with immediate connectivity verification. The vector
// index backend (core/vectorindex) consumes the client it produces.
//
// New fails fast when the cluster is unreachable, so a misconfigured
// deployment dies at startup instead of on the first build. Healthcheck
// returns a probe function suitable for readiness endpoints.
package opensearch
