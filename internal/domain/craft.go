package domain

import (
	"time"

	"github.com/google/uuid"
)

// CraftJob is a pending or finished forge job. An owner has at most one
// incomplete job at a time; a completed job is never reused.
type CraftJob struct {
	ID                uuid.UUID `json:"job_id"`
	OwnerID           string    `json:"owner_id"`
	ItemKind          string    `json:"item_kind"`
	StartedAt         time.Time `json:"started_at"`
	CommittedDuration int       `json:"committed_duration_minutes"`
	IsComplete        bool      `json:"is_complete"`
}

// ElapsedMinutes returns the whole-job elapsed time at now, in minutes.
func (j *CraftJob) ElapsedMinutes(now time.Time) float64 {
	return now.Sub(j.StartedAt).Minutes()
}

// Ready reports whether the job has run for its full committed duration.
// The committed duration gates collection; skill-based wait reduction only
// shrinks the advisory estimate shown to the player.
func (j *CraftJob) Ready(now time.Time) bool {
	return j.ElapsedMinutes(now) >= float64(j.CommittedDuration)
}
