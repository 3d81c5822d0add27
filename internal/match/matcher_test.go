package match_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/geo"
	"github.com/ryanfaricy/wherearethey-sub001/internal/match"
)

func verifiedAlert(lat, lng, radiusKm float64) domain.Alert {
	return domain.Alert{
		ID:       uuid.New(),
		Lat:      lat,
		Lng:      lng,
		RadiusKM: radiusKm,
		Verified: true,
	}
}

func TestMatch_InsideRadius(t *testing.T) {
	t.Parallel()

	m := match.NewMatcher()

	alert := verifiedAlert(40.0, -70.0, 5)
	report := domain.Report{Lat: 40.02, Lng: -70.01} // ~2.3km away

	got := m.Match(report, []domain.Alert{alert})
	if len(got) != 1 || got[0].ID != alert.ID {
		t.Fatalf("expected one match, got %v", got)
	}
}

func TestMatch_OutsideRadius(t *testing.T) {
	t.Parallel()

	m := match.NewMatcher()

	alert := verifiedAlert(40.0, -70.0, 5)
	report := domain.Report{Lat: 41.0, Lng: -70.0} // ~111km away

	if got := m.Match(report, []domain.Alert{alert}); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestMatch_BoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	m := match.NewMatcher()

	// A report exactly at distance r from the center must match.
	alert := verifiedAlert(40.0, -70.0, 0)
	report := domain.Report{Lat: 41.0, Lng: -70.0}
	alert.RadiusKM = geo.DistanceKM(alert.Lat, alert.Lng, report.Lat, report.Lng)

	got := m.Match(report, []domain.Alert{alert})
	if len(got) != 1 {
		t.Fatalf("boundary distance must be inclusive, got %v matches", len(got))
	}
}

func TestMatch_SkipsUnverifiedAndDeleted(t *testing.T) {
	t.Parallel()

	m := match.NewMatcher()
	report := domain.Report{Lat: 40.0, Lng: -70.0}

	unverified := verifiedAlert(40.0, -70.0, 5)
	unverified.Verified = false

	now := time.Now().UTC()
	deleted := verifiedAlert(40.0, -70.0, 5)
	deleted.DeletedAt = &now

	live := verifiedAlert(40.0, -70.0, 5)

	got := m.Match(report, []domain.Alert{unverified, deleted, live})
	if len(got) != 1 || got[0].ID != live.ID {
		t.Fatalf("only the live verified alert should match, got %v", got)
	}
}
