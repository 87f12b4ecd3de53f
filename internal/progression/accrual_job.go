package progression

import (
	"context"

	"github.com/osse101/EmojiKombat_Go/internal/logger"
)

// AccrualJob credits per-second yield to live sessions (implements worker.Job)
type AccrualJob struct {
	service Service
}

// NewAccrualJob creates a new accrual job
func NewAccrualJob(service Service) *AccrualJob {
	return &AccrualJob{service: service}
}

// Name identifies the job in worker logs
func (j *AccrualJob) Name() string { return "idle_accrual" }

// Process runs one accrual pass
func (j *AccrualJob) Process(ctx context.Context) error {
	changed, err := j.service.AccrueAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgAccrualFailed, "error", err)
		return err
	}
	if changed > 0 {
		logger.FromContext(ctx).Debug("Accrual pass complete", "sessions_changed", changed)
	}
	return nil
}
