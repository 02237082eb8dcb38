package jobs

import (
	"context"
	"log/slog"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleCollectionsJob sweeps for collection orders that sat uncollected
// past the configured threshold and cancels them. Cancellation is the
// stock-preserving removal, so swept quantities return to the shelf.
type StaleCollectionsJob struct {
	staleHandler  queries.GetStaleCollectionsQueryHandler
	cancelHandler commands.CancelOrderCommandHandler
	staleAfter    int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleCollectionsJob creates a job that cancels stale collections.
// staleAfterDays sets how many days an uncollected order may wait.
func NewStaleCollectionsJob(
	staleHandler queries.GetStaleCollectionsQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	staleAfterDays int,
	logger *slog.Logger,
) *StaleCollectionsJob {
	return &StaleCollectionsJob{
		staleHandler:  staleHandler,
		cancelHandler: cancelHandler,
		staleAfter:    staleAfterDays,
		cron:          cron.New(),
		logger:        logger.With("component", "stale_collections_job"),
	}
}

// Start begins the sweep, running at the top of every hour.
func (j *StaleCollectionsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale collections job started (running hourly)",
		"staleAfterDays", j.staleAfter)
	return nil
}

// Stop stops the sweep.
func (j *StaleCollectionsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale collections job stopped")
}

func (j *StaleCollectionsJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetStaleCollectionsQuery(j.staleAfter)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale collections query rejected", "error", err)
		return
	}

	stale, err := j.staleHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale collections lookup failed", "error", err)
		return
	}

	for _, candidate := range stale {
		cmd, cmdErr := commands.NewCancelOrderCommand(candidate.OrderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cancel command rejected",
				"orderId", candidate.OrderID, "error", cmdErr)
			continue
		}

		if cancelErr := j.cancelHandler.Handle(ctx, cmd); cancelErr != nil {
			// Leave the order for the next sweep.
			j.logger.ErrorContext(ctx, "Stale collection cancellation failed",
				"orderId", candidate.OrderID, "error", cancelErr)
			continue
		}

		j.logger.InfoContext(ctx, "Stale collection cancelled",
			"orderId", candidate.OrderID, "collectOn", candidate.CollectOn.String())
	}
}
