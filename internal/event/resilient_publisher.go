package event

import (
	"context"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter
// file for events that never make it through. Publish never surfaces a
// handler failure to the caller; the caller's transaction is already
// committed by the time an event goes out.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	return &ResilientPublisher{inner: inner, config: config, deadLetter: deadLetter}
}

// Publish attempts to publish an event, falling back to a background retry
// loop on failure. Always returns nil once the event is accepted.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	// The original request context may be cancelled long before the retries
	// finish, so the loop runs detached.
	go p.retryLoop(event)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
	}

	if p.deadLetter != nil {
		if err := p.deadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
			log.Error("Failed to write to dead letter", "error", err)
		}
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
