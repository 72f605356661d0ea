package handler

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/logger"
)

// publishEvent publishes ev after a successful operation. Publish failures
// are logged and swallowed; the ledger change already committed and must not
// be reported as failed.
func publishEvent(ctx context.Context, bus event.Bus, ev event.Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Error("Failed to publish event", "type", ev.Type, "error", err)
	}
}
