package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	"github.com/ryanfaricy/wherearethey-sub001/internal/settings"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/validator"
)

type adminService struct {
	reports  ReportStore
	alerts   AlertStore
	activity ActivityReader
	settings *settings.Store
	bus      *events.Bus
	cache    AlertCacheInvalidator
	logger   *slog.Logger
}

func NewAdminService(
	reports ReportStore,
	alerts AlertStore,
	activity ActivityReader,
	st *settings.Store,
	bus *events.Bus,
	cache AlertCacheInvalidator,
	logger *slog.Logger,
) AdminService {
	return &adminService{
		reports:  reports,
		alerts:   alerts,
		activity: activity,
		settings: st,
		bus:      bus,
		cache:    cache,
		logger:   logger,
	}
}

// Admin listings include soft-deleted rows so moderators can audit
// what was removed and when.
func (s *adminService) ListReports(ctx context.Context, page, limit int) (domain.ListReportsResponse, error) {
	reports, total, err := s.reports.List(ctx, page, limit, true)
	if err != nil {
		return domain.ListReportsResponse{}, e.Wrap("service.admin.ListReports", err)
	}
	return domain.ListReportsResponse{Reports: reports, Total: total, Page: page, Limit: limit}, nil
}

func (s *adminService) ListAlerts(ctx context.Context, page, limit int) (domain.ListAlertsResponse, error) {
	alerts, total, err := s.alerts.List(ctx, page, limit, true)
	if err != nil {
		return domain.ListAlertsResponse{}, e.Wrap("service.admin.ListAlerts", err)
	}
	return domain.ListAlertsResponse{Alerts: alerts, Total: total, Page: page, Limit: limit}, nil
}

func (s *adminService) DeleteReport(ctx context.Context, id uuid.UUID) error {
	report, err := s.reports.SoftDelete(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("report removed by admin", slog.String("id", id.String()))

	s.bus.Publish(domain.ReportEvent(domain.ChangeUpdated, report))
	s.bus.Publish(domain.ReportEvent(domain.ChangeDeleted, report))
	return nil
}

func (s *adminService) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	alert, err := s.alerts.SoftDelete(ctx, id, "")
	if err != nil {
		return err
	}

	s.logger.Info("alert removed by admin", slog.String("id", id.String()))

	s.bus.Publish(domain.AlertEvent(domain.ChangeUpdated, alert))
	s.bus.Publish(domain.AlertEvent(domain.ChangeDeleted, alert))
	s.cache.Invalidate(ctx)
	return nil
}

func (s *adminService) GetSettings(ctx context.Context) settings.Values {
	return s.settings.Get()
}

func (s *adminService) UpdateSettings(ctx context.Context, values settings.Values) error {
	if err := validator.ValidateStruct(values); err != nil {
		return e.Wrap("service.admin.UpdateSettings", err)
	}
	s.settings.Update(values)
	s.logger.Info("moderation settings updated",
		slog.Int("report_cooldown_minutes", values.ReportCooldownMinutes),
		slog.Int("max_alerts_per_window", values.MaxAlertsPerWindow),
	)
	return nil
}

func (s *adminService) UniqueReporters(ctx context.Context, minutes int) (int64, error) {
	count, err := s.activity.CountUniqueReporters(ctx, minutes)
	if err != nil {
		return 0, e.Wrap("service.admin.UniqueReporters", err)
	}
	return count, nil
}
