package common

// Severity represents the severity level of a message or error.
// It is used consistently across logging, error handling, and error dialogs.
type Severity string

const (
	// SeverityInfo represents informational messages that don't indicate any problem
	SeverityInfo Severity = "INFO"

	// SeverityWarning represents recoverable problems, such as unreadable cover art
	SeverityWarning Severity = "WARNING"

	// SeverityError represents failures of a user-initiated operation
	SeverityError Severity = "ERROR"

	// SeverityCritical represents errors that may leave parts of the application unusable
	SeverityCritical Severity = "CRITICAL"
)
