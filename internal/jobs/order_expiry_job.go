package jobs

import (
	"context"
	"log/slog"
	"time"

	"ecobazaar/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob cancels orders that sat in pending approval for too long
// and releases their reserved stock. Runs every minute.
type OrderExpiryJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
	maxAge  time.Duration
}

// NewOrderExpiryJob creates a job that expires pending orders older than
// maxAge. Uses ExpireStaleOrdersCommandHandler to cancel them in one
// transaction per run.
func NewOrderExpiryJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_expiry_job"),
		maxAge:  maxAge,
	}
}

// Start begins the order expiry job to run every minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStaleOrdersCommand(time.Now().UTC().Add(-j.maxAge))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed to build command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)",
		"maxAge", j.maxAge.String())
	return nil
}

// Stop stops the order expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
