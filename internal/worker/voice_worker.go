package worker

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/accrual"
)

// VoiceTickJob awards one voice accrual tick to every tracked account.
type VoiceTickJob struct {
	tracker *accrual.Tracker
}

// NewVoiceTickJob creates a new voice tick job
func NewVoiceTickJob(tracker *accrual.Tracker) *VoiceTickJob {
	return &VoiceTickJob{tracker: tracker}
}

// Process runs one tick over the tracked accounts.
func (j *VoiceTickJob) Process(ctx context.Context) error {
	j.tracker.Tick(ctx)
	return nil
}
