// Package device defines the device record model and the primary record
// store contract used by the build and search paths.
//
// Records are owned by an external acquisition process; during a build they
// are treated as immutable except for the derived Description field, which
// the summarization pass writes back through the store.
//
// Two store implementations are provided: FileStore reads an ordered JSON
// array from disk (the acquisition pipeline's output format) and serves
// reads from memory, and MongoStore serves the same contract from a MongoDB
// collection for deployments where acquisition writes to Mongo directly.
package device
