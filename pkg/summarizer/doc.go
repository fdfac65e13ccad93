// Package summarizer condenses composed device payloads into short
// customer-facing descriptions through a chat-completion model. The
// composer's describer drives it record by record and persists the
// results, so the expensive generation pass runs once per device.
package summarizer
