package live

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
)

// Loader reads the current visible set straight from the store on
// connect; everything after that arrives as change events.
type Loader interface {
	VisibleReports(ctx context.Context, includeDeleted bool) ([]domain.Report, error)
	VisibleAlerts(ctx context.Context, includeDeleted bool) ([]domain.Alert, error)
}

func reportEntity() Entity[domain.Report] {
	return Entity[domain.Report]{
		ID:        func(r domain.Report) uuid.UUID { return r.ID },
		DeletedAt: func(r domain.Report) *time.Time { return r.DeletedAt },
		Coords:    func(r domain.Report) (float64, float64) { return r.Lat, r.Lng },
	}
}

func alertEntity() Entity[domain.Alert] {
	return Entity[domain.Alert]{
		ID:        func(a domain.Alert) uuid.UUID { return a.ID },
		DeletedAt: func(a domain.Alert) *time.Time { return a.DeletedAt },
		Coords:    func(a domain.Alert) (float64, float64) { return a.Lat, a.Lng },
	}
}

// Projector is the per-connected-client state: one reconciling projection
// per entity kind, fed by the event bus. Created on connect, closed on
// disconnect.
type Projector struct {
	Identifier string
	IsAdmin    bool
	Reports    *Projection[domain.Report]
	Alerts     *Projection[domain.Alert]

	sub    *events.Subscription
	logger *slog.Logger
}

func NewProjector(identifier string, isAdmin bool, logger *slog.Logger) *Projector {
	return &Projector{
		Identifier: identifier,
		IsAdmin:    isAdmin,
		Reports:    NewProjection(reportEntity(), isAdmin),
		Alerts:     NewProjection(alertEntity(), isAdmin),
		logger:     logger,
	}
}

// Initialize loads the current visible set from the store and subscribes
// to the bus. onChange, when non-nil, runs after each applied event so
// the connection handler can push a delta to its client.
func (p *Projector) Initialize(ctx context.Context, loader Loader, bus *events.Bus, onChange func(domain.ChangeEvent)) error {
	reports, err := loader.VisibleReports(ctx, p.IsAdmin)
	if err != nil {
		return err
	}
	alerts, err := loader.VisibleAlerts(ctx, p.IsAdmin)
	if err != nil {
		return err
	}
	p.Reports.Load(reports)
	p.Alerts.Load(alerts)

	p.sub = bus.Subscribe(func(ev domain.ChangeEvent) {
		p.ApplyChange(ev)
		if onChange != nil {
			onChange(ev)
		}
	})
	return nil
}

// ApplyChange reconciles one change event into the projections.
func (p *Projector) ApplyChange(ev domain.ChangeEvent) {
	switch ev.Entity {
	case domain.EntityReport:
		if ev.Report == nil {
			return
		}
		switch ev.Change {
		case domain.ChangeAdded:
			p.Reports.ApplyAdded(*ev.Report)
		case domain.ChangeUpdated:
			p.Reports.ApplyUpdated(*ev.Report)
		case domain.ChangeDeleted:
			p.Reports.ApplyDeleted(ev.Report.ID)
		}
	case domain.EntityAlert:
		if ev.Alert == nil {
			return
		}
		switch ev.Change {
		case domain.ChangeAdded:
			p.Alerts.ApplyAdded(*ev.Alert)
		case domain.ChangeUpdated:
			p.Alerts.ApplyUpdated(*ev.Alert)
		case domain.ChangeDeleted:
			p.Alerts.ApplyDeleted(ev.Alert.ID)
		}
	default:
		p.logger.Warn("unknown entity kind in change event", slog.String("entity", string(ev.Entity)))
	}
}

// FindNearbyReports is used to decide whether a proximity notification
// should be surfaced to the viewer when a new report lands near their
// last known location.
func (p *Projector) FindNearbyReports(lat, lng, radiusKm float64) []domain.Report {
	return p.Reports.FindNearby(lat, lng, radiusKm)
}

// Close unsubscribes from the bus. Must be called on disconnect.
func (p *Projector) Close() {
	if p.sub != nil {
		p.sub.Close()
	}
}
