package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus, the dead-letter
// writer and the resilient publisher that wraps them. An empty deadLetterPath
// falls back to the default location.
func InitializeEventSystem(deadLetterPath string) (*event.MemoryBus, *event.ResilientPublisher, *event.DeadLetterWriter, error) {
	bus := event.NewMemoryBus()

	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create dead-letter writer: %w", err)
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: event.RetryMaxAttempts,
		RetryDelay: event.RetryInitialDelay,
	}, deadLetter)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", event.RetryMaxAttempts,
		"retry_delay", event.RetryInitialDelay,
		"deadletter_path", deadLetterPath)

	return bus, publisher, deadLetter, nil
}

// RegisterEventHandlers subscribes every in-process consumer to the bus.
// Today that is the Prometheus collector; notification fan-out joins here
// when it lands.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
