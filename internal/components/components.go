package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ryanfaricy/wherearethey-sub001/internal/api"
	"github.com/ryanfaricy/wherearethey-sub001/internal/config"
	"github.com/ryanfaricy/wherearethey-sub001/internal/crypto"
	"github.com/ryanfaricy/wherearethey-sub001/internal/dispatch"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	"github.com/ryanfaricy/wherearethey-sub001/internal/match"
	"github.com/ryanfaricy/wherearethey-sub001/internal/policy"
	"github.com/ryanfaricy/wherearethey-sub001/internal/service"
	"github.com/ryanfaricy/wherearethey-sub001/internal/settings"
	"github.com/ryanfaricy/wherearethey-sub001/internal/storage/postgres"
	"github.com/ryanfaricy/wherearethey-sub001/internal/storage/redis"
	"github.com/ryanfaricy/wherearethey-sub001/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	EmailQ     *redis.EmailQueue
	Courier    *workers.EmailCourier
	Bus        *events.Bus
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	emailQueue := redis.NewEmailQueue(redisClient.Client, "emails:queue")
	alertCache := redis.NewAlertCache(redisClient, storage.Alerts, logger)

	settingsStore := settings.NewStore(cfg.Policy)
	bus := events.NewBus(logger)
	contactCrypto := crypto.New(cfg.Contact.EncryptionKey)
	pol := policy.New(storage.Activity, settingsStore, policy.SystemClock{}, logger)

	pushSender := dispatch.NewHTTPPushSender(cfg.Push.Timeout, logger)
	dispatcher := dispatch.NewDispatcher(
		alertCache,
		storage.Subscriptions,
		match.NewMatcher(),
		pushSender,
		emailQueue,
		contactCrypto,
		logger,
	)

	publicSvc := service.NewPublicService(storage.Reports, storage.Feedback, pol, bus, dispatcher, logger)
	alertSvc := service.NewAlertService(storage.Alerts, storage.Subscriptions, pol, contactCrypto, bus, emailQueue, alertCache, logger, cfg.PublicBaseURL)
	adminSvc := service.NewAdminService(storage.Reports, storage.Alerts, storage.Activity, settingsStore, bus, alertCache, logger)

	srv := service.NewService(publicSvc, alertSvc, adminSvc)

	courier := workers.NewEmailCourier(logger, emailQueue, workers.NewSMTPSender(cfg.Email, logger))

	httpServer := api.NewServer(cfg, logger, srv, storage, bus)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		EmailQ:     emailQueue,
		Courier:    courier,
		Bus:        bus,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
