package cron

import (
	"time"

	"go.uber.org/zap"

	"homebook/clock"
)

// Sweeper drops entries that outlived their TTL and reports how many.
type Sweeper interface {
	Sweep() int
}

// StartSessionSweeper sweeps every target each interval until the returned
// CancelFunc is called. Redis expires snapshot keys itself, but the booking
// service still needs its idle attempts swept.
func StartSessionSweeper(clk clock.Clock, interval time.Duration, logger *zap.Logger, targets ...Sweeper) clock.CancelFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[SessionSweeper] starting", zap.Duration("interval", interval), zap.Int("targets", len(targets)))
	return clk.Every(interval, func() {
		for _, target := range targets {
			if n := target.Sweep(); n > 0 {
				logger.Debug("[SessionSweeper] expired sessions removed", zap.Int("count", n))
			}
		}
	})
}
