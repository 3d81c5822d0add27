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

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `id, lat, lng, radius_km, message, owner_id, encrypted_contact, contact_hash, verified, verify_token, use_push, use_email, created_at, deleted_at`

func scanAlert(row pgx.Row) (*domain.Alert, error) {
	var a domain.Alert
	err := row.Scan(
		&a.ID,
		&a.Lat,
		&a.Lng,
		&a.RadiusKM,
		&a.Message,
		&a.OwnerID,
		&a.EncryptedContact,
		&a.ContactHash,
		&a.Verified,
		&a.VerifyToken,
		&a.UsePush,
		&a.UseEmail,
		&a.CreatedAt,
		&a.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (p *AlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.Create"

	if alert.Lat < -90 || alert.Lat > 90 || alert.Lng < -180 || alert.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if alert.RadiusKM <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO alerts (id, lat, lng, radius_km, message, owner_id, encrypted_contact, contact_hash, verified, verify_token, use_push, use_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.Lat,
		alert.Lng,
		alert.RadiusKM,
		alert.Message,
		alert.OwnerID,
		alert.EncryptedContact,
		alert.ContactHash,
		alert.Verified,
		alert.VerifyToken,
		alert.UsePush,
		alert.UseEmail,
		alert.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// ActiveAlerts returns every alert eligible for matching: verified and
// not deleted.
func (p *AlertRepo) ActiveAlerts(ctx context.Context) ([]domain.Alert, error) {
	const op = "postgres.Alert.ActiveAlerts"

	query := fmt.Sprintf(`
		SELECT %s
		FROM alerts
		WHERE verified = TRUE AND deleted_at IS NULL
	`, alertColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, *a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

func (p *AlertRepo) List(ctx context.Context, page, limit int, includeDeleted bool) ([]domain.Alert, int64, error) {
	const op = "postgres.Alert.List"

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

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM alerts %s`, where)

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM alerts
		%s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, alertColumns, where)

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, *a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return alerts, total, nil
}

func (p *AlertRepo) VisibleAlerts(ctx context.Context, includeDeleted bool) ([]domain.Alert, error) {
	alerts, _, err := p.List(ctx, 1, 100, includeDeleted)
	return alerts, err
}

// VerifyByToken flips the matching alert to verified and clears the
// token so a verification link cannot be replayed.
func (p *AlertRepo) VerifyByToken(ctx context.Context, token string) (*domain.Alert, error) {
	const op = "postgres.Alert.VerifyByToken"

	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := fmt.Sprintf(`
		UPDATE alerts
		SET verified = TRUE, verify_token = ''
		WHERE verify_token = $1 AND deleted_at IS NULL
		RETURNING %s
	`, alertColumns)

	a, err := scanAlert(p.pool.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

// SoftDelete marks the alert deleted. When ownerID is non-empty the
// delete is owner-scoped; admins pass an empty ownerID.
func (p *AlertRepo) SoftDelete(ctx context.Context, id uuid.UUID, ownerID string) (*domain.Alert, error) {
	const op = "postgres.Alert.SoftDelete"

	query := fmt.Sprintf(`
		UPDATE alerts
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL AND ($3 = '' OR owner_id = $3)
		RETURNING %s
	`, alertColumns)

	a, err := scanAlert(p.pool.QueryRow(ctx, query, id, time.Now().UTC(), ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}
