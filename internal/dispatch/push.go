package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// HTTPPushSender posts the notification payload to each subscription
// endpoint. Status codes classify the failure: 404 and 410 mean the
// endpoint is gone for good, everything else failing is transient.
type HTTPPushSender struct {
	http   *http.Client
	logger *slog.Logger
}

func NewHTTPPushSender(timeout time.Duration, logger *slog.Logger) *HTTPPushSender {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPPushSender{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (s *HTTPPushSender) Send(ctx context.Context, sub domain.PushSubscription, title, body, url string) error {
	const op = "dispatch.push.Send"

	payload, err := json.Marshal(pushPayload{Title: title, Body: body, URL: url})
	if err != nil {
		return e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrPermanentFailure)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("TTL", "86400")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", op, err, e.ErrTransientFailure)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%s: endpoint returned %s: %w", op, resp.Status, e.ErrPermanentFailure)
	default:
		return fmt.Errorf("%s: endpoint returned %s: %w", op, resp.Status, e.ErrTransientFailure)
	}
}
