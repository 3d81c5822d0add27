package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

type SubscriptionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSubscriptionRepo(pool *pgxpool.Pool, logger *slog.Logger) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool, logger: logger}
}

func (p *SubscriptionRepo) Create(ctx context.Context, sub *domain.PushSubscription) error {
	const op = "postgres.Subscription.Create"

	if sub.Endpoint == "" || sub.OwnerID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO push_subscriptions (id, owner_id, endpoint, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query, sub.ID, sub.OwnerID, sub.Endpoint, sub.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *SubscriptionRepo) ActiveSubscriptions(ctx context.Context, ownerID string) ([]domain.PushSubscription, error) {
	const op = "postgres.Subscription.ActiveSubscriptions"

	const query = `
		SELECT id, owner_id, endpoint, created_at, deleted_at
		FROM push_subscriptions
		WHERE owner_id = $1 AND deleted_at IS NULL
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var subs []domain.PushSubscription
	for rows.Next() {
		var s domain.PushSubscription
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Endpoint, &s.CreatedAt, &s.DeletedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return subs, nil
}

// SoftDelete retires a subscription whose endpoint reported a permanent
// delivery failure.
func (p *SubscriptionRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Subscription.SoftDelete"

	const query = `
		UPDATE push_subscriptions
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
