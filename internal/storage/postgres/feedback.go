package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

type FeedbackRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewFeedbackRepo(pool *pgxpool.Pool, logger *slog.Logger) *FeedbackRepo {
	return &FeedbackRepo{pool: pool, logger: logger}
}

func (p *FeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	const op = "postgres.Feedback.Create"

	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO feedback (id, sender_id, message, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query, fb.ID, fb.SenderID, fb.Message, fb.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
