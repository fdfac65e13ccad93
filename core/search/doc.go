// Package search answers free-text queries against an indexed device
// corpus. A query is embedded with the same provider that built the
// collection, matched by cosine similarity, and every hit is hydrated
// back into a full device record from the primary store.
//
// Hydration is strict: a hit whose id is missing from the store means
// the index and the store have diverged, and the whole search fails
// with ErrDataIntegrity rather than silently dropping results.
package search
