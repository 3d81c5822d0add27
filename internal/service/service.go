package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/settings"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Store interfaces. Implemented by the postgres repositories; mocked in
// tests.

type ReportStore interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, page, limit int, includeDeleted bool) ([]domain.Report, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}

type AlertStore interface {
	Create(ctx context.Context, alert *domain.Alert) error
	List(ctx context.Context, page, limit int, includeDeleted bool) ([]domain.Alert, int64, error)
	VerifyByToken(ctx context.Context, token string) (*domain.Alert, error)
	SoftDelete(ctx context.Context, id uuid.UUID, ownerID string) (*domain.Alert, error)
}

type SubscriptionStore interface {
	Create(ctx context.Context, sub *domain.PushSubscription) error
}

type FeedbackStore interface {
	Create(ctx context.Context, fb *domain.Feedback) error
}

type ActivityReader interface {
	CountUniqueReporters(ctx context.Context, minutes int) (int64, error)
}

// EmailQueue accepts outbound mail; the courier drains it.
type EmailQueue interface {
	Enqueue(ctx context.Context, job domain.EmailJob) error
}

// ReportDispatcher fans a fresh report out to matching alerts off the
// request path.
type ReportDispatcher interface {
	DispatchAsync(report domain.Report)
}

// AlertCacheInvalidator drops the cached active-alert set after an alert
// mutation so the next dispatch reads fresh state.
type AlertCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// Public use-cases, consumed by the public handlers.
type PublicService interface {
	SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.Report, error)
	ListReports(ctx context.Context, page, limit int) (domain.ListReportsResponse, error)
	SubmitFeedback(ctx context.Context, req domain.SubmitFeedbackRequest) error
	NewIdentifier() string
}

// Alert use-cases, consumed by the public handlers.
type AlertService interface {
	CreateAlert(ctx context.Context, req domain.CreateAlertRequest) (uuid.UUID, error)
	VerifyAlert(ctx context.Context, token string) error
	DeleteAlert(ctx context.Context, id uuid.UUID, ownerID string) error
	RegisterPushSubscription(ctx context.Context, req domain.RegisterSubscriptionRequest) (uuid.UUID, error)
}

// Admin use-cases, consumed by the admin handlers behind the API key.
type AdminService interface {
	ListReports(ctx context.Context, page, limit int) (domain.ListReportsResponse, error)
	ListAlerts(ctx context.Context, page, limit int) (domain.ListAlertsResponse, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
	DeleteAlert(ctx context.Context, id uuid.UUID) error
	GetSettings(ctx context.Context) settings.Values
	UpdateSettings(ctx context.Context, v settings.Values) error
	UniqueReporters(ctx context.Context, minutes int) (int64, error)
}

type Service struct {
	PublicService PublicService
	AlertService  AlertService
	AdminService  AdminService
}

func NewService(
	publicService PublicService,
	alertService AlertService,
	adminService AdminService,
) *Service {
	return &Service{
		PublicService: publicService,
		AlertService:  alertService,
		AdminService:  adminService,
	}
}
