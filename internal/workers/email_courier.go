package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	storageredis "github.com/ryanfaricy/wherearethey-sub001/internal/storage/redis"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

// EmailSender delivers one email. Implementations live at the edge
// (SMTP); the courier only cares about success or failure.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailCourier drains the email queue in the background. Delivery is
// best-effort: a failed job is retried a few times and then dropped with
// a log line, never propagated back to any submitter.
type EmailCourier struct {
	logger *slog.Logger
	queue  *storageredis.EmailQueue
	sender EmailSender
}

func NewEmailCourier(logger *slog.Logger, queue *storageredis.EmailQueue, sender EmailSender) *EmailCourier {
	return &EmailCourier{
		logger: logger,
		queue:  queue,
		sender: sender,
	}
}

func (c *EmailCourier) Run(ctx context.Context) {
	c.logger.Info("email courier started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("email courier stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		job, err := c.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			c.logger.Error("email queue pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		c.sendWithRetry(ctx, job)
	}
}

func (c *EmailCourier) sendWithRetry(ctx context.Context, job domain.EmailJob) {
	const maxRetries = 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			c.logger.Info("stop retries due to context cancel")
			return
		}

		err := c.sender.Send(ctx, job.To, job.Subject, job.Body)
		if err == nil {
			c.logger.Info("email sent", slog.String("subject", job.Subject))
			return
		}

		c.logger.Warn("email send failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	c.logger.Error("email dropped after retries", slog.String("subject", job.Subject))
}
