package worker

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/pet"
)

// GrowthJob is the scheduled pass that grows every active pet. It is the one
// state mutation driven by wall clock rather than a user action.
type GrowthJob struct {
	pets pet.Service
}

// NewGrowthJob creates a new pet growth job
func NewGrowthJob(pets pet.Service) *GrowthJob {
	return &GrowthJob{pets: pets}
}

// Process runs one growth pass.
func (j *GrowthJob) Process(ctx context.Context) error {
	grown, err := j.pets.RunHourlyGrowth(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Pet growth pass completed", "pets_grown", grown)
	return nil
}
