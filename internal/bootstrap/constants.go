// Package bootstrap wires the application together at startup: logging,
// repositories, the event system and graceful shutdown.
package bootstrap

import "time"

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// EventDefaultDeadLetterPath is where exhausted events land when the
	// config does not override it.
	EventDefaultDeadLetterPath = "data/deadletter.jsonl"

	// Scheduler cadences for the background jobs.
	GrowthInterval    = time.Hour
	VoiceTickInterval = time.Minute
)

// Log messages
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgServerStopped              = "Server stopped"
	LogMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
)
