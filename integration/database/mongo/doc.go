// Package mongo provides configuration-driven MongoDB client
// initialization with startup retry logic. The Mongo-backed device
// store (core/device.MongoStore) consumes the database it produces.
//
// Connection retries absorb Atlas cold starts and brief network blips
// that would otherwise fail application startup.
package mongo
