package live

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
)

func TestSnapshotOmitsOwnerAndReporter(t *testing.T) {
	t.Parallel()

	lat := 40.01
	msg := snapshotMessage{
		Type: "snapshot",
		Reports: []domain.Report{{
			ID:          uuid.New(),
			Lat:         40.0,
			Lng:         -70.0,
			ReporterID:  "swift-brave-river-42",
			ReporterLat: &lat,
			ReporterLng: &lat,
			CreatedAt:   time.Now(),
		}},
		Alerts: []domain.Alert{{
			ID:               uuid.New(),
			Lat:              40.0,
			Lng:              -70.0,
			RadiusKM:         5,
			OwnerID:          "calm-amber-meadow-7",
			EncryptedContact: "opaque",
			ContactHash:      "hash",
			VerifyToken:      "token",
			Verified:         true,
			CreatedAt:        time.Now(),
		}},
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	// Owner identifiers double as delete credentials, and reporter
	// identity and device location are never public.
	for _, leak := range []string{
		"owner_id", "calm-amber-meadow-7",
		"reporter_id", "reporter_lat", "reporter_lng", "swift-brave-river-42",
		"opaque", "hash", "token",
	} {
		if bytes.Contains(raw, []byte(leak)) {
			t.Fatalf("snapshot leaks %q: %s", leak, raw)
		}
	}
}

func TestDeltaOmitsOwnerAndReporter(t *testing.T) {
	t.Parallel()

	alert := &domain.Alert{ID: uuid.New(), Lat: 40.0, Lng: -70.0, RadiusKM: 5, OwnerID: "calm-amber-meadow-7"}
	report := &domain.Report{ID: uuid.New(), Lat: 40.0, Lng: -70.0, ReporterID: "swift-brave-river-42"}

	for _, ev := range []domain.ChangeEvent{
		domain.AlertEvent(domain.ChangeAdded, alert),
		domain.ReportEvent(domain.ChangeAdded, report),
	} {
		raw, err := json.Marshal(changeMessage{Type: "change", Event: ev})
		if err != nil {
			t.Fatalf("marshal delta: %v", err)
		}
		for _, leak := range []string{"owner_id", "calm-amber-meadow-7", "reporter_id", "swift-brave-river-42"} {
			if bytes.Contains(raw, []byte(leak)) {
				t.Fatalf("delta leaks %q: %s", leak, raw)
			}
		}
	}
}
