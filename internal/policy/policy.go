// Package policy holds the anti-abuse checks applied to reports, alerts
// and feedback before anything is persisted. Checks are independent and
// composable; parameters come from the mutable settings store, read at
// check time.
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/geo"
	"github.com/ryanfaricy/wherearethey-sub001/internal/settings"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

// Clock is injected so cooldown boundaries are testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// ActivityStore reads recent-activity counts for an identifier. Counts
// are computed on demand; they must reflect the current time at each
// check, never a stale cache.
type ActivityStore interface {
	RecentSubmissionCount(ctx context.Context, identifier string, kind domain.EntityKind, since time.Time) (int, error)
}

type Policy struct {
	store    ActivityStore
	settings *settings.Store
	clock    Clock
	logger   *slog.Logger
}

func New(store ActivityStore, st *settings.Store, clock Clock, logger *slog.Logger) *Policy {
	return &Policy{
		store:    store,
		settings: st,
		clock:    clock,
		logger:   logger,
	}
}

// ValidateIdentifier rejects empty or too-short identifiers. Identifiers
// are self-chosen passphrases, not authenticated accounts.
func (p *Policy) ValidateIdentifier(identifier string) error {
	min := p.settings.Get().MinIdentifierLength
	if len(identifier) < min {
		return fmt.Errorf("identifier %q: %w", identifier, e.ErrInvalidIdentifier)
	}
	return nil
}

// ValidateNoLinks is a deliberately simple deny-list, not a URL parser.
func (p *Policy) ValidateNoLinks(message string) error {
	lower := strings.ToLower(message)
	for _, needle := range []string{"http://", "https://", "www."} {
		if strings.Contains(lower, needle) {
			return fmt.Errorf("message contains %q: %w", needle, e.ErrContentRejected)
		}
	}
	return nil
}

// ValidateCooldown rejects a submission when the identifier already
// submitted within the trailing window [now-window, now]. "now" is read
// once per call; concurrent submissions from the same identifier can race
// past each other, which is accepted for an anti-abuse heuristic.
func (p *Policy) ValidateCooldown(ctx context.Context, identifier string, kind domain.EntityKind, windowMinutes int) error {
	if windowMinutes <= 0 {
		return nil
	}

	now := p.clock.Now()
	since := now.Add(-time.Duration(windowMinutes) * time.Minute)

	count, err := p.store.RecentSubmissionCount(ctx, identifier, kind, since)
	if err != nil {
		return e.Wrap("policy.ValidateCooldown", err)
	}
	if count > 0 {
		p.logger.Debug("cooldown active",
			slog.String("identifier", identifier),
			slog.String("kind", string(kind)),
			slog.Int("window_minutes", windowMinutes),
		)
		return e.ErrCooldownActive
	}
	return nil
}

// ReportCooldownMinutes and FeedbackCooldownMinutes expose the current
// windows for callers composing checks.
func (p *Policy) ReportCooldownMinutes() int   { return p.settings.Get().ReportCooldownMinutes }
func (p *Policy) FeedbackCooldownMinutes() int { return p.settings.Get().FeedbackCooldownMinutes }

// ValidateAlertLimit caps how many alerts one identifier may create
// within the alert window.
func (p *Policy) ValidateAlertLimit(ctx context.Context, identifier string) error {
	cfg := p.settings.Get()
	now := p.clock.Now()
	since := now.Add(-time.Duration(cfg.AlertWindowMinutes) * time.Minute)

	count, err := p.store.RecentSubmissionCount(ctx, identifier, domain.EntityAlert, since)
	if err != nil {
		return e.Wrap("policy.ValidateAlertLimit", err)
	}
	if count >= cfg.MaxAlertsPerWindow {
		p.logger.Debug("alert limit reached",
			slog.String("identifier", identifier),
			slog.Int("count", count),
			slog.Int("max", cfg.MaxAlertsPerWindow),
		)
		return e.ErrLimitExceeded
	}
	return nil
}

// ValidateDistance requires a report to be geographically corroborated by
// the submitting device: reporter coordinates must be present and within
// the configured mileage of the reported location.
func (p *Policy) ValidateDistance(reportLat, reportLng float64, reporterLat, reporterLng *float64) error {
	if reporterLat == nil || reporterLng == nil {
		return e.ErrLocationUnverified
	}

	maxKm := geo.MilesToKM(p.settings.Get().MaxReportDistanceMiles)
	if d := geo.DistanceKM(reportLat, reportLng, *reporterLat, *reporterLng); d > maxKm {
		p.logger.Debug("report too far from reporter",
			slog.Float64("distance_km", d),
			slog.Float64("max_km", maxKm),
		)
		return e.ErrTooFarFromReporter
	}
	return nil
}
