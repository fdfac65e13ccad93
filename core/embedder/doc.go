// Package embedder converts an ordered list of payload strings into an
// ordered list of fixed-dimension vectors through a batched embedding
// provider.
//
// The alignment contract is absolute: the result always has one vector per
// input text, with vector i corresponding to text i regardless of how the
// input was chunked or how chunks completed. Any chunk failure aborts the
// whole operation; partial vector sets are never returned, because a
// misaligned vector set would silently corrupt the index.
package embedder
