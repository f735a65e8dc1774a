package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Error format constants
const (
	ErrFmtHandlerErrors = "%d handler(s) failed for event %s: %v"
)

// Log message constants
const (
	LogMsgPublishFailed = "Event publish failed"
)
