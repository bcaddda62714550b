package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayBatchSize limits how many messages one relay pass drains.
const relayBatchSize = 100

// OutboxRelayJob drains the notification outbox to the message broker.
// Runs every five seconds so notifications follow their operations closely
// without hammering the broker.
type OutboxRelayJob struct {
	handler commands.RelayOutboxCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob creates a new job for relaying outbox messages.
func NewOutboxRelayJob(handler commands.RelayOutboxCommandHandler, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every five seconds.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRelayOutboxCommand(relayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Outbox relay command is invalid", "error", cmdErr)
			return
		}

		relayed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Outbox relay pass failed",
				"relayed", relayed, "error", handleErr)
			return
		}

		if relayed > 0 {
			j.logger.InfoContext(ctx, "Outbox messages relayed", "count", relayed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every five seconds)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
