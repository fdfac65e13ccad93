// Package composer builds the embedding payload text for a device from its
// identity fields and classification fragments, and optionally compresses
// that text into a stored marketing description through an external
// summarization provider.
//
// Composition is pure: the same record and fragment set always produce the
// same payload. The summarization pass is a separate, throttled batch
// operation that skips records which already carry a description.
package composer
