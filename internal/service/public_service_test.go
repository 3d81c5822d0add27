package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	"github.com/ryanfaricy/wherearethey-sub001/internal/policy"
	"github.com/ryanfaricy/wherearethey-sub001/internal/service"
	"github.com/ryanfaricy/wherearethey-sub001/internal/settings"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"

	mock_service "github.com/ryanfaricy/wherearethey-sub001/internal/service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeActivity struct {
	counts map[domain.EntityKind]int
	err    error
}

func (f *fakeActivity) RecentSubmissionCount(_ context.Context, _ string, kind domain.EntityKind, _ time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[kind], nil
}

func newTestPolicy(activity *fakeActivity) *policy.Policy {
	return policy.New(activity, settings.NewStore(settings.Defaults()), policy.SystemClock{}, discardLogger())
}

func ptr(f float64) *float64 { return &f }

func validSubmitRequest() domain.SubmitReportRequest {
	return domain.SubmitReportRequest{
		Lat:         40.0,
		Lng:         -70.0,
		Message:     "two unmarked vans at the corner",
		ReporterID:  "swift-brave-river-42",
		ReporterLat: ptr(40.01),
		ReporterLng: ptr(-70.0),
	}
}

func TestPublicService_SubmitReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	dispatcher := mock_service.NewMockReportDispatcher(ctrl)
	bus := events.NewBus(discardLogger())

	var published []domain.ChangeEvent
	sub := bus.Subscribe(func(ev domain.ChangeEvent) {
		published = append(published, ev)
	})
	defer sub.Close()

	reports.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	dispatcher.EXPECT().
		DispatchAsync(gomock.Any()).
		Times(1)

	svc := service.NewPublicService(reports, nil, newTestPolicy(&fakeActivity{}), bus, dispatcher, discardLogger())

	report, err := svc.SubmitReport(context.Background(), validSubmitRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report == nil {
		t.Fatal("expected a report back")
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if published[0].Entity != domain.EntityReport || published[0].Change != domain.ChangeAdded {
		t.Fatalf("unexpected event: %+v", published[0])
	}
}

func TestPublicService_SubmitReport_CooldownActive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	dispatcher := mock_service.NewMockReportDispatcher(ctrl)

	activity := &fakeActivity{counts: map[domain.EntityKind]int{domain.EntityReport: 1}}
	svc := service.NewPublicService(reports, nil, newTestPolicy(activity), events.NewBus(discardLogger()), dispatcher, discardLogger())

	_, err := svc.SubmitReport(context.Background(), validSubmitRequest())
	if !errors.Is(err, e.ErrCooldownActive) {
		t.Fatalf("expected ErrCooldownActive, got %v", err)
	}
}

func TestPublicService_SubmitReport_RejectsLinks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewPublicService(
		mock_service.NewMockReportStore(ctrl), nil,
		newTestPolicy(&fakeActivity{}),
		events.NewBus(discardLogger()),
		mock_service.NewMockReportDispatcher(ctrl),
		discardLogger(),
	)

	req := validSubmitRequest()
	req.Message = "seen here WWW.example.com"

	_, err := svc.SubmitReport(context.Background(), req)
	if !errors.Is(err, e.ErrContentRejected) {
		t.Fatalf("expected ErrContentRejected, got %v", err)
	}
}

func TestPublicService_SubmitReport_RequiresReporterLocation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewPublicService(
		mock_service.NewMockReportStore(ctrl), nil,
		newTestPolicy(&fakeActivity{}),
		events.NewBus(discardLogger()),
		mock_service.NewMockReportDispatcher(ctrl),
		discardLogger(),
	)

	req := validSubmitRequest()
	req.ReporterLat = nil
	req.ReporterLng = nil

	_, err := svc.SubmitReport(context.Background(), req)
	if !errors.Is(err, e.ErrLocationUnverified) {
		t.Fatalf("expected ErrLocationUnverified, got %v", err)
	}
}

func TestPublicService_SubmitReport_TooFarFromReporter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewPublicService(
		mock_service.NewMockReportStore(ctrl), nil,
		newTestPolicy(&fakeActivity{}),
		events.NewBus(discardLogger()),
		mock_service.NewMockReportDispatcher(ctrl),
		discardLogger(),
	)

	req := validSubmitRequest()
	// Roughly 220 km away, far beyond the default 10 mile cap.
	req.ReporterLat = ptr(42.0)
	req.ReporterLng = ptr(-70.0)

	_, err := svc.SubmitReport(context.Background(), req)
	if !errors.Is(err, e.ErrTooFarFromReporter) {
		t.Fatalf("expected ErrTooFarFromReporter, got %v", err)
	}
}

func TestPublicService_SubmitReport_ShortIdentifier(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewPublicService(
		mock_service.NewMockReportStore(ctrl), nil,
		newTestPolicy(&fakeActivity{}),
		events.NewBus(discardLogger()),
		mock_service.NewMockReportDispatcher(ctrl),
		discardLogger(),
	)

	req := validSubmitRequest()
	req.ReporterID = "short"

	_, err := svc.SubmitReport(context.Background(), req)
	if !errors.Is(err, e.ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestPublicService_ListReports_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	reports.EXPECT().
		List(gomock.Any(), 2, 20, false).
		Return([]domain.Report{}, int64(0), nil).
		Times(1)

	svc := service.NewPublicService(reports, nil, newTestPolicy(&fakeActivity{}), events.NewBus(discardLogger()), mock_service.NewMockReportDispatcher(ctrl), discardLogger())

	resp, err := svc.ListReports(context.Background(), 2, 20)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Page != 2 || resp.Limit != 20 {
		t.Fatalf("unexpected pagination echo: %+v", resp)
	}
}

func TestPublicService_SubmitFeedback_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedback := mock_service.NewMockFeedbackStore(ctrl)
	feedback.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	svc := service.NewPublicService(nil, feedback, newTestPolicy(&fakeActivity{}), events.NewBus(discardLogger()), nil, discardLogger())

	err := svc.SubmitFeedback(context.Background(), domain.SubmitFeedbackRequest{
		SenderID: "swift-brave-river-42",
		Message:  "the map is very slow on mobile",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestPublicService_SubmitFeedback_Cooldown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activity := &fakeActivity{counts: map[domain.EntityKind]int{domain.EntityFeedback: 1}}
	svc := service.NewPublicService(nil, mock_service.NewMockFeedbackStore(ctrl), newTestPolicy(activity), events.NewBus(discardLogger()), nil, discardLogger())

	err := svc.SubmitFeedback(context.Background(), domain.SubmitFeedbackRequest{
		SenderID: "swift-brave-river-42",
		Message:  "still slow",
	})
	if !errors.Is(err, e.ErrCooldownActive) {
		t.Fatalf("expected ErrCooldownActive, got %v", err)
	}
}

func TestPublicService_NewIdentifier_LongEnough(t *testing.T) {
	t.Parallel()

	svc := service.NewPublicService(nil, nil, newTestPolicy(&fakeActivity{}), events.NewBus(discardLogger()), nil, discardLogger())

	min := settings.Defaults().MinIdentifierLength
	for i := 0; i < 50; i++ {
		id := svc.NewIdentifier()
		if len(id) < min {
			t.Fatalf("generated identifier %q shorter than %d", id, min)
		}
	}
}
