// Package redis provides configuration-driven Redis client
// initialization with connection verification and retry logic. The
// build lock (core/builder.RedisLocker) consumes the client it
// produces to serialize index rebuilds across processes.
package redis
