package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/api/handlers/http/public"
	mock_public "github.com/ryanfaricy/wherearethey-sub001/internal/api/handlers/http/public/mocks"
	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestSubmitReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReportSubmitter(ctrl)
	h := public.NewHandler(newTestLogger(), reports, mock_public.NewMockAlertManager(ctrl))

	reqBody := `{"lat":40.0,"lng":-70.0,"message":"two vans","reporter_id":"swift-brave-river-42","reporter_lat":40.01,"reporter_lng":-70.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	created := &domain.Report{ID: uuid.New(), Lat: 40.0, Lng: -70.0, ReporterID: "swift-brave-river-42"}
	reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(created, nil).
		Times(1)

	h.SubmitReport(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Report](t, rr)
	if got.ID != created.ID {
		t.Fatalf("unexpected report id: got=%s want=%s", got.ID, created.ID)
	}
}

func TestSubmitReport_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), mock_public.NewMockAlertManager(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.SubmitReport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestSubmitReport_OutOfRangeLatitude_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), mock_public.NewMockAlertManager(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(`{"lat":95.0,"lng":10.0,"reporter_id":"swift-brave-river-42"}`))
	rr := httptest.NewRecorder()

	h.SubmitReport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestSubmitReport_ZeroCoordinates_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReportSubmitter(ctrl)
	h := public.NewHandler(newTestLogger(), reports, mock_public.NewMockAlertManager(ctrl))

	created := &domain.Report{ID: uuid.New()}
	reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(created, nil).
		Times(1)

	// The equator and prime meridian are real places.
	reqBody := `{"lat":0,"lng":0,"reporter_id":"swift-brave-river-42","reporter_lat":0.01,"reporter_lng":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.SubmitReport(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestSubmitReport_Cooldown_429(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReportSubmitter(ctrl)
	h := public.NewHandler(newTestLogger(), reports, mock_public.NewMockAlertManager(ctrl))

	reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrCooldownActive).
		Times(1)

	reqBody := `{"lat":40.0,"lng":-70.0,"reporter_id":"swift-brave-river-42","reporter_lat":40.0,"reporter_lng":-70.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.SubmitReport(rr, req)

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected %d got %d body=%s", http.StatusTooManyRequests, rr.Code, rr.Body.String())
	}
}

func TestSubmitReport_LocationUnverified_422(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReportSubmitter(ctrl)
	h := public.NewHandler(newTestLogger(), reports, mock_public.NewMockAlertManager(ctrl))

	reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrLocationUnverified).
		Times(1)

	reqBody := `{"lat":40.0,"lng":-70.0,"reporter_id":"swift-brave-river-42","reporter_lat":40.0,"reporter_lng":-70.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.SubmitReport(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d got %d body=%s", http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]string](t, rr)
	if resp["error"] == "" {
		t.Fatal("rejection must carry user-facing text")
	}
}

func TestListReports_PassesPagination(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReportSubmitter(ctrl)
	h := public.NewHandler(newTestLogger(), reports, mock_public.NewMockAlertManager(ctrl))

	reports.EXPECT().
		ListReports(gomock.Any(), 3, 10).
		Return(domain.ListReportsResponse{Page: 3, Limit: 10}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?page=3&limit=10", nil)
	rr := httptest.NewRecorder()

	h.ListReports(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestListReports_OmitsReporterFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReportSubmitter(ctrl)
	h := public.NewHandler(newTestLogger(), reports, mock_public.NewMockAlertManager(ctrl))

	lat := 40.01
	listed := domain.ListReportsResponse{
		Reports: []domain.Report{{
			ID:          uuid.New(),
			Lat:         40.0,
			Lng:         -70.0,
			ReporterID:  "swift-brave-river-42",
			ReporterLat: &lat,
			ReporterLng: &lat,
		}},
		Total: 1, Page: 1, Limit: 20,
	}
	reports.EXPECT().
		ListReports(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(listed, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	rr := httptest.NewRecorder()

	h.ListReports(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	for _, leak := range []string{"reporter_id", "reporter_lat", "reporter_lng", "swift-brave-river-42"} {
		if bytes.Contains(rr.Body.Bytes(), []byte(leak)) {
			t.Fatalf("response leaks %q: %s", leak, rr.Body.String())
		}
	}
}

func TestCreateAlert_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_public.NewMockAlertManager(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), alerts)

	id := uuid.New()
	alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		Return(id, nil).
		Times(1)

	reqBody := `{"lat":40.0,"lng":-70.0,"radius_km":5,"owner_id":"calm-amber-meadow-7","contact":"owner@example.org","use_email":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.CreateAlert(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]string](t, rr)
	if resp["id"] != id.String() {
		t.Fatalf("unexpected id: got=%s want=%s", resp["id"], id)
	}
}

func TestCreateAlert_RadiusTooLarge_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), mock_public.NewMockAlertManager(ctrl))

	reqBody := `{"lat":40.0,"lng":-70.0,"radius_km":500,"owner_id":"calm-amber-meadow-7","contact":"owner@example.org"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.CreateAlert(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestVerifyAlert_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_public.NewMockAlertManager(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), alerts)

	alerts.EXPECT().
		VerifyAlert(gomock.Any(), "tok123").
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/verify", bytes.NewBufferString(`{"token":"tok123"}`))
	rr := httptest.NewRecorder()

	h.VerifyAlert(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestVerifyAlert_UnknownToken_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_public.NewMockAlertManager(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), alerts)

	alerts.EXPECT().
		VerifyAlert(gomock.Any(), "expired").
		Return(e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/verify", bytes.NewBufferString(`{"token":"expired"}`))
	rr := httptest.NewRecorder()

	h.VerifyAlert(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestDeleteAlert_RequiresOwner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), mock_public.NewMockAlertManager(ctrl))

	id := uuid.New()
	req := newChiRequest(http.MethodDelete, "/api/v1/alerts/"+id.String(), id.String(), nil)
	rr := httptest.NewRecorder()

	h.DeleteAlert(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestDeleteAlert_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_public.NewMockAlertManager(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockReportSubmitter(ctrl), alerts)

	id := uuid.New()
	alerts.EXPECT().
		DeleteAlert(gomock.Any(), id, "calm-amber-meadow-7").
		Return(nil).
		Times(1)

	req := newChiRequest(http.MethodDelete, "/api/v1/alerts/"+id.String()+"?owner_id=calm-amber-meadow-7", id.String(), nil)
	rr := httptest.NewRecorder()

	h.DeleteAlert(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestNewIdentifier_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReportSubmitter(ctrl)
	h := public.NewHandler(newTestLogger(), reports, mock_public.NewMockAlertManager(ctrl))

	reports.EXPECT().NewIdentifier().Return("swift-brave-river-42").Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/identifier", nil)
	rr := httptest.NewRecorder()

	h.NewIdentifier(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	resp := decodeJSON[map[string]string](t, rr)
	if resp["identifier"] != "swift-brave-river-42" {
		t.Fatalf("unexpected identifier: %q", resp["identifier"])
	}
}

// newChiRequest builds a request with the {id} route parameter populated,
// since the handlers read it through chi's route context.
func newChiRequest(method, target, id string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
