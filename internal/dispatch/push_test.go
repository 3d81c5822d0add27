package dispatch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ryanfaricy/wherearethey-sub001/internal/dispatch"
	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

func TestHTTPPushSender_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"created is success", http.StatusCreated, nil},
		{"ok is success", http.StatusOK, nil},
		{"gone is permanent", http.StatusGone, e.ErrPermanentFailure},
		{"not found is permanent", http.StatusNotFound, e.ErrPermanentFailure},
		{"server error is transient", http.StatusInternalServerError, e.ErrTransientFailure},
		{"too many requests is transient", http.StatusTooManyRequests, e.ErrTransientFailure},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			s := dispatch.NewHTTPPushSender(2*time.Second, newTestLogger())
			sub := domain.PushSubscription{ID: uuid.New(), Endpoint: srv.URL}

			err := s.Send(context.Background(), sub, "title", "body", "/map")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHTTPPushSender_ConnectionRefusedIsTransient(t *testing.T) {
	t.Parallel()

	s := dispatch.NewHTTPPushSender(time.Second, newTestLogger())
	sub := domain.PushSubscription{ID: uuid.New(), Endpoint: "http://127.0.0.1:1/unreachable"}

	err := s.Send(context.Background(), sub, "title", "body", "/map")
	assert.ErrorIs(t, err, e.ErrTransientFailure)
}
