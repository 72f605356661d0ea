package accrual

import (
	"context"
	"sync"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/logger"
)

// VoiceState is the last observed presence of a tracked account's space.
type VoiceState struct {
	Participants int
	Streaming    bool
}

// eligible reports whether the state still qualifies for voice accrual.
func (v VoiceState) eligible() bool {
	return v.Participants >= voiceParticipantFloor
}

// Tracker is the per-account voice-presence state machine. An account is
// either idle (absent from the map) or tracking. Presence-change events drive
// Start/Update/Stop; a periodic Tick awards every tracked account and drops
// the ones that became ineligible. Callers must restart tracking explicitly
// when eligibility resumes.
type Tracker struct {
	svc Service
	bus event.Bus

	mu      sync.Mutex
	tracked map[string]VoiceState
}

// NewTracker creates a new voice tracker. bus may be nil when no event bus is
// wired; awards then go unannounced.
func NewTracker(svc Service, bus event.Bus) *Tracker {
	return &Tracker{svc: svc, bus: bus, tracked: make(map[string]VoiceState)}
}

// Start begins tracking an account. Starting an already-tracked account only
// refreshes its observed state.
func (t *Tracker) Start(accountID string, state VoiceState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracked[accountID] = state
}

// Update refreshes the observed state of a tracked account. Updates for idle
// accounts are ignored; eligibility must resume through Start.
func (t *Tracker) Update(accountID string, state VoiceState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.tracked[accountID]; ok {
		t.tracked[accountID] = state
	}
}

// Stop ends tracking. Safe to call for accounts that were never started.
func (t *Tracker) Stop(accountID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tracked, accountID)
}

// Tracking reports whether the account is currently tracked.
func (t *Tracker) Tracking(accountID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.tracked[accountID]
	return ok
}

// Tick awards one voice tick to every tracked account and transitions the
// ineligible ones back to idle. The award itself is still cooldown-gated per
// account, so a Tick running early is harmless.
func (t *Tracker) Tick(ctx context.Context) {
	t.mu.Lock()
	snapshot := make(map[string]VoiceState, len(t.tracked))
	for id, state := range t.tracked {
		snapshot[id] = state
	}
	t.mu.Unlock()

	log := logger.FromContext(ctx)
	for id, state := range snapshot {
		if !state.eligible() {
			t.Stop(id)
			continue
		}
		reward, err := t.svc.TryAwardVoiceTick(ctx, id, state.Participants, state.Streaming)
		if err != nil {
			log.Error("Voice tick failed", "account", id, "error", err)
			continue
		}
		if reward.Awarded && t.bus != nil {
			if err := t.bus.Publish(ctx, event.NewAccrualEvent(event.TypeVoiceReward, id, reward.Coins)); err != nil {
				log.Error("Failed to publish event", "type", event.TypeVoiceReward, "error", err)
			}
		}
	}
}

// Shutdown drops every tracked account.
func (t *Tracker) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracked = make(map[string]VoiceState)
}
