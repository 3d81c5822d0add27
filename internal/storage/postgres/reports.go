package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `id, lat, lng, message, is_emergency, reporter_id, reporter_lat, reporter_lng, created_at, deleted_at`

func scanReport(row pgx.Row) (*domain.Report, error) {
	var r domain.Report
	err := row.Scan(
		&r.ID,
		&r.Lat,
		&r.Lng,
		&r.Message,
		&r.IsEmergency,
		&r.ReporterID,
		&r.ReporterLat,
		&r.ReporterLng,
		&r.CreatedAt,
		&r.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *ReportRepo) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	if report.Lat < -90 || report.Lat > 90 || report.Lng < -180 || report.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO reports (id, lat, lng, message, is_emergency, reporter_id, reporter_lat, reporter_lng, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Lat,
		report.Lng,
		report.Message,
		report.IsEmergency,
		report.ReporterID,
		report.ReporterLat,
		report.ReporterLng,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	query := fmt.Sprintf(`SELECT %s FROM reports WHERE id = $1`, reportColumns)

	r, err := scanReport(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return r, nil
}

// List returns reports newest first. includeDeleted is the admin view;
// the public view only sees rows without a deletion mark.
func (p *ReportRepo) List(ctx context.Context, page, limit int, includeDeleted bool) ([]domain.Report, int64, error) {
	const op = "postgres.Report.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	where := `WHERE deleted_at IS NULL`
	if includeDeleted {
		where = ``
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM reports %s`, where)

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM reports
		%s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, reportColumns, where)

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, *r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

// VisibleReports feeds a projector's initial load.
func (p *ReportRepo) VisibleReports(ctx context.Context, includeDeleted bool) ([]domain.Report, error) {
	reports, _, err := p.List(ctx, 1, 100, includeDeleted)
	return reports, err
}

// SoftDelete marks the report deleted and returns the updated row. Rows
// are never hard-removed on this path.
func (p *ReportRepo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.SoftDelete"

	query := fmt.Sprintf(`
		UPDATE reports
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING %s
	`, reportColumns)

	r, err := scanReport(p.pool.QueryRow(ctx, query, id, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return r, nil
}
