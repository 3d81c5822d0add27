// Package match decides which geofenced alerts a new report falls into.
package match

import (
	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/geo"
)

// Matcher finds the alerts whose circle contains a report's coordinate.
// The interface exists so the linear scan can be swapped for a spatial
// index without touching callers; at per-deployment alert counts in the
// thousands the scan is fine.
type Matcher interface {
	Match(report domain.Report, alerts []domain.Alert) []domain.Alert
}

type haversineMatcher struct{}

func NewMatcher() Matcher {
	return haversineMatcher{}
}

// Match returns every verified, non-deleted alert whose radius covers the
// report. Distance exactly equal to the radius counts as inside. Result
// ordering is unspecified; matches are dispatched independently.
func (haversineMatcher) Match(report domain.Report, alerts []domain.Alert) []domain.Alert {
	var matched []domain.Alert
	for _, a := range alerts {
		if !a.Matchable() {
			continue
		}
		if geo.DistanceKM(a.Lat, a.Lng, report.Lat, report.Lng) <= a.RadiusKM {
			matched = append(matched, a)
		}
	}
	return matched
}
