package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryanfaricy/wherearethey-sub001/internal/config"
	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

type Postgres struct {
	Pool          *pgxpool.Pool
	Reports       *ReportRepo
	Alerts        *AlertRepo
	Subscriptions *SubscriptionRepo
	Feedback      *FeedbackRepo
	Activity      *ActivityRepo
}

// VisibleReports and VisibleAlerts satisfy the live view loader without
// exposing the individual repositories to the websocket layer.
func (p *Postgres) VisibleReports(ctx context.Context, includeDeleted bool) ([]domain.Report, error) {
	return p.Reports.VisibleReports(ctx, includeDeleted)
}

func (p *Postgres) VisibleAlerts(ctx context.Context, includeDeleted bool) ([]domain.Alert, error) {
	return p.Alerts.VisibleAlerts(ctx, includeDeleted)
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	return &Postgres{
		Pool:          pool,
		Reports:       NewReportRepo(pool, logger),
		Alerts:        NewAlertRepo(pool, logger),
		Subscriptions: NewSubscriptionRepo(pool, logger),
		Feedback:      NewFeedbackRepo(pool, logger),
		Activity:      NewActivityRepo(pool, logger),
	}, nil
}
