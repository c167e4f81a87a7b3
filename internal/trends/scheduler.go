package trends

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultDailyCron runs shortly after midnight so the snapshot anchors
// the new calendar date as early as possible.
const DefaultDailyCron = "5 0 * * *"

// Scheduler runs the daily snapshot update on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	updater *Updater
	log     *slog.Logger
}

// NewScheduler creates a Scheduler running the daily update on spec.
// An empty spec falls back to DefaultDailyCron.
func NewScheduler(u *Updater, spec string, log *slog.Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultDailyCron
	}

	c := cron.New()

	s := &Scheduler{
		cron:    c,
		updater: u,
		log:     log,
	}

	if _, err := c.AddFunc(spec, s.runDailyUpdate); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runDailyUpdate() {
	ctx := context.Background()
	s.log.Info("scheduled daily update starting")
	if err := s.updater.RunDailyUpdate(ctx); err != nil {
		s.log.Error("scheduled daily update failed", "error", err)
	}
}
