package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

// ActivityRepo computes recent-submission counts for the policy checks.
// Counts are queried on demand against the current time; nothing here is
// cached.
type ActivityRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewActivityRepo(pool *pgxpool.Pool, logger *slog.Logger) *ActivityRepo {
	return &ActivityRepo{pool: pool, logger: logger}
}

func (p *ActivityRepo) RecentSubmissionCount(ctx context.Context, identifier string, kind domain.EntityKind, since time.Time) (int, error) {
	const op = "postgres.Activity.RecentSubmissionCount"

	var query string
	switch kind {
	case domain.EntityReport:
		query = `SELECT COUNT(*) FROM reports WHERE reporter_id = $1 AND created_at >= $2`
	case domain.EntityAlert:
		query = `SELECT COUNT(*) FROM alerts WHERE owner_id = $1 AND created_at >= $2`
	case domain.EntityFeedback:
		query = `SELECT COUNT(*) FROM feedback WHERE sender_id = $1 AND created_at >= $2`
	default:
		return 0, fmt.Errorf("%s: unknown kind %q: %w", op, kind, e.ErrInvalidInput)
	}

	var count int
	if err := p.pool.QueryRow(ctx, query, identifier, since).Scan(&count); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("kind", string(kind)),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}

// CountUniqueReporters is the admin activity figure: distinct reporter
// identifiers seen within the trailing window.
func (p *ActivityRepo) CountUniqueReporters(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Activity.CountUniqueReporters"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(DISTINCT reporter_id)
		FROM reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
