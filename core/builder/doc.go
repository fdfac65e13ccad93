// Package builder orchestrates the full indexing pipeline: load every
// device record, classify and compose its search payload, embed the
// payloads in batches, and rebuild the target collection from scratch
// with explicit entry ids.
//
// Builds against the same collection are serialized through a Locker; a
// second build started while one is running fails fast with
// ErrBuildInProgress instead of racing the rebuild. Computed vectors can
// be cached on disk (pkg/vecfile) so a re-run over an unchanged corpus
// skips the provider calls.
package builder
