package jobs

import (
	"fmt"
	"log/slog"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleCollectionsJob *StaleCollectionsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	staleHandler queries.GetStaleCollectionsQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	staleAfterDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleCollectionsJob: NewStaleCollectionsJob(staleHandler, cancelHandler, staleAfterDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleCollectionsJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale collections job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleCollectionsJob.Stop()
}
