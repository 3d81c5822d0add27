package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	"github.com/ryanfaricy/wherearethey-sub001/internal/service"
	"github.com/ryanfaricy/wherearethey-sub001/internal/settings"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"

	mock_service "github.com/ryanfaricy/wherearethey-sub001/internal/service/mocks"
)

func TestAdminService_ListReports_IncludesDeleted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	reports.EXPECT().
		List(gomock.Any(), 1, 50, true).
		Return([]domain.Report{}, int64(3), nil).
		Times(1)

	svc := service.NewAdminService(reports, nil, nil, settings.NewStore(settings.Defaults()), events.NewBus(discardLogger()), mock_service.NewMockAlertCacheInvalidator(ctrl), discardLogger())

	resp, err := svc.ListReports(context.Background(), 1, 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("expected total 3, got %d", resp.Total)
	}
}

func TestAdminService_DeleteReport_EventPair(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	bus := events.NewBus(discardLogger())

	id := uuid.New()
	reports.EXPECT().
		SoftDelete(gomock.Any(), id).
		Return(&domain.Report{ID: id}, nil).
		Times(1)

	var changes []domain.ChangeKind
	sub := bus.Subscribe(func(ev domain.ChangeEvent) { changes = append(changes, ev.Change) })
	defer sub.Close()

	svc := service.NewAdminService(reports, nil, nil, settings.NewStore(settings.Defaults()), bus, mock_service.NewMockAlertCacheInvalidator(ctrl), discardLogger())

	if err := svc.DeleteReport(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(changes) != 2 || changes[0] != domain.ChangeUpdated || changes[1] != domain.ChangeDeleted {
		t.Fatalf("expected updated then deleted, got %v", changes)
	}
}

func TestAdminService_DeleteAlert_InvalidatesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertStore(ctrl)
	cache := mock_service.NewMockAlertCacheInvalidator(ctrl)

	id := uuid.New()
	alerts.EXPECT().
		SoftDelete(gomock.Any(), id, "").
		Return(&domain.Alert{ID: id}, nil).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Times(1)

	svc := service.NewAdminService(nil, alerts, nil, settings.NewStore(settings.Defaults()), events.NewBus(discardLogger()), cache, discardLogger())

	if err := svc.DeleteAlert(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAdminService_DeleteReport_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	id := uuid.New()
	reports.EXPECT().
		SoftDelete(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	svc := service.NewAdminService(reports, nil, nil, settings.NewStore(settings.Defaults()), events.NewBus(discardLogger()), mock_service.NewMockAlertCacheInvalidator(ctrl), discardLogger())

	if err := svc.DeleteReport(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminService_UpdateSettings_RoundTrip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := settings.NewStore(settings.Defaults())
	svc := service.NewAdminService(nil, nil, nil, store, events.NewBus(discardLogger()), mock_service.NewMockAlertCacheInvalidator(ctrl), discardLogger())

	next := settings.Defaults()
	next.ReportCooldownMinutes = 15
	next.MaxAlertsPerWindow = 5

	if err := svc.UpdateSettings(context.Background(), next); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := svc.GetSettings(context.Background())
	if got.ReportCooldownMinutes != 15 || got.MaxAlertsPerWindow != 5 {
		t.Fatalf("settings did not stick: %+v", got)
	}
}

func TestAdminService_UpdateSettings_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := settings.NewStore(settings.Defaults())
	svc := service.NewAdminService(nil, nil, nil, store, events.NewBus(discardLogger()), mock_service.NewMockAlertCacheInvalidator(ctrl), discardLogger())

	bad := settings.Defaults()
	bad.MaxAlertsPerWindow = 0

	if err := svc.UpdateSettings(context.Background(), bad); err == nil {
		t.Fatal("expected a validation error")
	}
	if got := svc.GetSettings(context.Background()); got.MaxAlertsPerWindow != settings.Defaults().MaxAlertsPerWindow {
		t.Fatalf("rejected update must not change the store: %+v", got)
	}
}

func TestAdminService_UniqueReporters_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activity := mock_service.NewMockActivityReader(ctrl)
	activity.EXPECT().
		CountUniqueReporters(gomock.Any(), 60).
		Return(int64(12), nil).
		Times(1)

	svc := service.NewAdminService(nil, nil, activity, settings.NewStore(settings.Defaults()), events.NewBus(discardLogger()), mock_service.NewMockAlertCacheInvalidator(ctrl), discardLogger())

	count, err := svc.UniqueReporters(context.Background(), 60)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if count != 12 {
		t.Fatalf("expected 12, got %d", count)
	}
}
