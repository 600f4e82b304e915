package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"glg-capital.backend/pkg/logger"
	"glg-capital.backend/pkg/metrics"
)

// codeSweeper is the part of the SimpleKYC store the job needs
type codeSweeper interface {
	ClearExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error)
}

// VerificationCodeExpiryJob clears e-mail verification codes that expired
// before the applicant used them.
type VerificationCodeExpiryJob struct {
	repo     codeSweeper
	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewVerificationCodeExpiryJob(repo codeSweeper, interval time.Duration) *VerificationCodeExpiryJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &VerificationCodeExpiryJob{
		repo:     repo,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Stop is called
func (j *VerificationCodeExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting verification code expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Verification code expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Verification code expiry job stopped")
			return
		case <-ticker.C:
			j.clearExpiredCodes(ctx)
		}
	}
}

func (j *VerificationCodeExpiryJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *VerificationCodeExpiryJob) clearExpiredCodes(ctx context.Context) {
	cleared, err := j.repo.ClearExpiredVerificationCodes(ctx, j.now())
	if err != nil {
		logger.Error(ctx, "Error clearing expired verification codes", zap.Error(err))
		return
	}
	if cleared == 0 {
		return
	}

	metrics.ExpiredCodesCleared.Add(float64(cleared))
	logger.Info(ctx, "Cleared expired verification codes", zap.Int64("count", cleared))
}
