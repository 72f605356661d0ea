package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the first retry backoff step
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// DeadLetterFilePermissions is the file permission mode for dead-letter files
const DeadLetterFilePermissions = 0644

// Log message constants
const (
	LogMsgEventPublishFailed  = "Event publish failed, retrying in background"
	LogMsgEventRetryExhausted = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetrySucceeded = "Event retry succeeded"
	LogMsgHandlerErrorFormat  = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns the exponential backoff delay for an attempt:
// 2s, 4s, 8s, 16s, 32s for the default initial delay.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
