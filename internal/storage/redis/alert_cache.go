package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
)

// AlertCache keeps the active alert set hot for the dispatcher. The key
// is dropped on every alert mutation, so a dispatch that runs after a
// deletion always re-reads a set without the deleted alert.
type AlertCache struct {
	client *goredis.Client
	source ActiveAlertSource
	logger *slog.Logger
	key    string
	ttl    time.Duration
}

type ActiveAlertSource interface {
	ActiveAlerts(ctx context.Context) ([]domain.Alert, error)
}

func NewAlertCache(r *Redis, source ActiveAlertSource, logger *slog.Logger) *AlertCache {
	return &AlertCache{
		client: r.Client,
		source: source,
		logger: logger,
		key:    "alerts:active",
		ttl:    30 * time.Second,
	}
}

// ActiveAlerts reads through the cache, falling back to the store. Cache
// failures degrade to a direct store read rather than failing dispatch.
func (c *AlertCache) ActiveAlerts(ctx context.Context) ([]domain.Alert, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == nil {
		var alerts []domain.Alert
		if err := json.Unmarshal(data, &alerts); err == nil {
			return alerts, nil
		}
		c.logger.Warn("alert cache held unreadable payload, invalidating")
		_ = c.client.Del(ctx, c.key).Err()
	} else if !errors.Is(err, goredis.Nil) {
		c.logger.Warn("alert cache read failed", slog.Any("error", err))
	}

	alerts, err := c.source.ActiveAlerts(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(alerts); err == nil {
		if err := c.client.Set(ctx, c.key, b, c.ttl).Err(); err != nil {
			c.logger.Warn("alert cache write failed", slog.Any("error", err))
		}
	}

	return alerts, nil
}

// Invalidate drops the cached set. Called after every alert mutation.
func (c *AlertCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		c.logger.Warn("alert cache invalidate failed", slog.Any("error", err))
	}
}
