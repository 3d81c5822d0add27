package service

import (
	"context"
	"log/slog"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	"github.com/ryanfaricy/wherearethey-sub001/internal/ident"
	"github.com/ryanfaricy/wherearethey-sub001/internal/policy"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

type publicService struct {
	reports  ReportStore
	feedback FeedbackStore
	policy   *policy.Policy
	bus      *events.Bus
	dispatch ReportDispatcher
	logger   *slog.Logger
}

func NewPublicService(
	reports ReportStore,
	feedback FeedbackStore,
	pol *policy.Policy,
	bus *events.Bus,
	dispatch ReportDispatcher,
	logger *slog.Logger,
) PublicService {
	return &publicService{
		reports:  reports,
		feedback: feedback,
		policy:   pol,
		bus:      bus,
		dispatch: dispatch,
		logger:   logger,
	}
}

// SubmitReport runs the policy gauntlet, persists, publishes the change
// and hands the report to the dispatcher. Matching and notification
// latency never block the submitter: once the event is published this
// returns.
func (s *publicService) SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.Report, error) {
	if err := s.policy.ValidateIdentifier(req.ReporterID); err != nil {
		return nil, err
	}
	if err := s.policy.ValidateNoLinks(req.Message); err != nil {
		return nil, err
	}
	if err := s.policy.ValidateDistance(req.Lat, req.Lng, req.ReporterLat, req.ReporterLng); err != nil {
		return nil, err
	}
	if err := s.policy.ValidateCooldown(ctx, req.ReporterID, domain.EntityReport, s.policy.ReportCooldownMinutes()); err != nil {
		return nil, err
	}

	report := &domain.Report{
		Lat:         req.Lat,
		Lng:         req.Lng,
		Message:     req.Message,
		IsEmergency: req.IsEmergency,
		ReporterID:  req.ReporterID,
		ReporterLat: req.ReporterLat,
		ReporterLng: req.ReporterLng,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, e.Wrap("service.SubmitReport", err)
	}

	s.logger.Info("report created",
		slog.String("id", report.ID.String()),
		slog.Bool("emergency", report.IsEmergency),
	)

	s.bus.Publish(domain.ReportEvent(domain.ChangeAdded, report))
	s.dispatch.DispatchAsync(*report)

	return report, nil
}

func (s *publicService) ListReports(ctx context.Context, page, limit int) (domain.ListReportsResponse, error) {
	reports, total, err := s.reports.List(ctx, page, limit, false)
	if err != nil {
		return domain.ListReportsResponse{}, err
	}
	return domain.ListReportsResponse{
		Reports: reports,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func (s *publicService) SubmitFeedback(ctx context.Context, req domain.SubmitFeedbackRequest) error {
	if err := s.policy.ValidateIdentifier(req.SenderID); err != nil {
		return err
	}
	if err := s.policy.ValidateNoLinks(req.Message); err != nil {
		return err
	}
	if err := s.policy.ValidateCooldown(ctx, req.SenderID, domain.EntityFeedback, s.policy.FeedbackCooldownMinutes()); err != nil {
		return err
	}

	fb := &domain.Feedback{
		SenderID: req.SenderID,
		Message:  req.Message,
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return e.Wrap("service.SubmitFeedback", err)
	}

	s.logger.Info("feedback received", slog.String("id", fb.ID.String()))
	return nil
}

func (s *publicService) NewIdentifier() string {
	return ident.New()
}
