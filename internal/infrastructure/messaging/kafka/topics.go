// Package kafka publishes engine lifecycle events.  Publishing is strictly
// best-effort: a broker outage is logged and swallowed, never surfaced to the
// scoring path.
package kafka

// Topic names.
const (
	TopicConceptAnalyzed = "greenlight.concept.analyzed"
	TopicVersionSaved    = "greenlight.version.saved"
)
