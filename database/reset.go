package database

import (
	"context"
	"time"

	"vinyl-api/config"
	"vinyl-api/internal/store"

	"github.com/sirupsen/logrus"
)

// ResetInterval is the fixed automatic reset period.
const ResetInterval = time.Hour

// NextResetIn is the time left until the next automatic reset. Windows are
// counted from the store's creation instant, not from the last reset, so a
// manual reset does not move the schedule.
func NextResetIn(createdAt, now time.Time, interval time.Duration) time.Duration {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return interval
	}
	return interval - elapsed%interval
}

// RunAutoReset resets s with load on every interval boundary after
// s.CreatedAt() until ctx is done.
func RunAutoReset(ctx context.Context, s *store.Store, load store.Loader, interval time.Duration, logger *logrus.Logger) {
	timer := time.NewTimer(NextResetIn(s.CreatedAt(), s.Now(), interval))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if err := s.Reset(load); err != nil {
				config.LogError(logger, "database", "RunAutoReset", "scheduled reset", nil, err)
			} else {
				logger.WithField("stats", s.Stats()).Info("store reset")
			}
			timer.Reset(NextResetIn(s.CreatedAt(), s.Now(), interval))
		}
	}
}
