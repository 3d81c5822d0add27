package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/settings"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Moderator interface {
	ListReports(ctx context.Context, page, limit int) (domain.ListReportsResponse, error)
	ListAlerts(ctx context.Context, page, limit int) (domain.ListAlertsResponse, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
	DeleteAlert(ctx context.Context, id uuid.UUID) error
	GetSettings(ctx context.Context) settings.Values
	UpdateSettings(ctx context.Context, v settings.Values) error
	UniqueReporters(ctx context.Context, minutes int) (int64, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  Moderator
}

func NewHandler(logger *slog.Logger, admin Moderator) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
	}
}

func (h *Handler) AdminReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 200 {
		limit = 200
	}

	resp, err := h.Admin.ListReports(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("reports listed", slog.Int64("total", resp.Total))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AdminReportDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Admin.DeleteReport(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report removed", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AdminAlertList(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 200 {
		limit = 200
	}

	resp, err := h.Admin.ListAlerts(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AdminAlertDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Admin.DeleteAlert(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert removed", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AdminSettingsGet(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Admin.GetSettings(r.Context()))
}

func (h *Handler) AdminSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var values settings.Values
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Admin.UpdateSettings(r.Context(), values); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("settings updated")
	h.writeJSON(w, http.StatusOK, values)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	minutes := parseInt(r.URL.Query().Get("window_minutes"), 60)

	count, err := h.Admin.UniqueReporters(r.Context(), minutes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"unique_reporters": count,
		"window_minutes":   minutes,
	})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
