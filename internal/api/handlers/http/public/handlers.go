package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportSubmitter interface {
	SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.Report, error)
	ListReports(ctx context.Context, page, limit int) (domain.ListReportsResponse, error)
	SubmitFeedback(ctx context.Context, req domain.SubmitFeedbackRequest) error
	NewIdentifier() string
}

type AlertManager interface {
	CreateAlert(ctx context.Context, req domain.CreateAlertRequest) (uuid.UUID, error)
	VerifyAlert(ctx context.Context, token string) error
	DeleteAlert(ctx context.Context, id uuid.UUID, ownerID string) error
	RegisterPushSubscription(ctx context.Context, req domain.RegisterSubscriptionRequest) (uuid.UUID, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports ReportSubmitter
	Alerts  AlertManager
}

func NewHandler(logger *slog.Logger, reports ReportSubmitter, alerts AlertManager) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
		Alerts:  alerts,
	}
}

func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid report payload", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	report, err := h.Reports.SubmitReport(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report accepted", slog.String("id", report.ID.String()))
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	resp, err := h.Reports.ListReports(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	if err := h.Reports.SubmitFeedback(r.Context(), req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("feedback accepted")
	h.writeJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid alert payload", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	id, err := h.Alerts.CreateAlert(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert accepted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) VerifyAlert(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	if err := h.Alerts.VerifyAlert(r.Context(), req.Token); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "owner_id is required"})
		return
	}

	if err := h.Alerts.DeleteAlert(r.Context(), id, ownerID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) RegisterSubscription(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegisterSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid subscription payload", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	id, err := h.Alerts.RegisterPushSubscription(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) NewIdentifier(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"identifier": h.Reports.NewIdentifier()})
}
