package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// countdownTicker is the part of the realtime hub the job drives.
type countdownTicker interface {
	TickCountdowns()
}

// CountdownJob advances the session-local order countdowns once per second.
// The hub owns the countdown state; the job only supplies the cadence.
type CountdownJob struct {
	ticker countdownTicker
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCountdownJob creates the one-second countdown ticker job.
func NewCountdownJob(ticker countdownTicker, logger *slog.Logger) *CountdownJob {
	return &CountdownJob{
		ticker: ticker,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "countdown_job"),
	}
}

// Start begins ticking countdowns every second.
func (j *CountdownJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.ticker.TickCountdowns()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Countdown job started (running every second)")
	return nil
}

// Stop stops the countdown job.
func (j *CountdownJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Countdown job stopped")
}
