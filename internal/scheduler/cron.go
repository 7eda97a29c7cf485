package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Pruner removes expired analyses from a persistent cache
type Pruner interface {
	Prune() (int, error)
}

// Scheduler manages scheduled tasks
type Scheduler struct {
	cron   *cron.Cron
	pruner Pruner
	logger *logrus.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(pruner Pruner, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		pruner: pruner,
		logger: logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler")

	// Every hour: drop expired cached analyses
	_, err := s.cron.AddFunc("0 * * * *", func() {
		s.runPrune()
	})
	if err != nil {
		return fmt.Errorf("failed to add prune job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	// Entries may have expired while the process was down
	go s.runPrune()

	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}

// runPrune executes the prune job
func (s *Scheduler) runPrune() {
	s.logger.Debug("Running analysis cache prune")

	removed, err := s.pruner.Prune()
	if err != nil {
		s.logger.WithError(err).Error("Prune job failed")
		return
	}
	s.logger.WithField("removed", removed).Info("Prune job completed successfully")
}
