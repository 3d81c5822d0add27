package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is a single anonymous sighting. Immutable after creation except
// for the DeletedAt transition (soft delete only).
type Report struct {
	ID          uuid.UUID  `json:"id"`
	Lat         float64    `json:"lat" validate:"lat"`
	Lng         float64    `json:"lng" validate:"lng"`
	Message     string     `json:"message,omitempty"`
	IsEmergency bool       `json:"is_emergency"`
	// Reporter identity and device location exist only for the
	// submission-distance check and abuse windows. Never serialized;
	// reports are anonymous on every read surface.
	ReporterID  string     `json:"-"`
	ReporterLat *float64   `json:"-"`
	ReporterLng *float64   `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// ShouldShow is the shared visibility rule: admins see everything,
// everyone else only sees entities without a deletion mark.
func ShouldShow(deletedAt *time.Time, isAdmin bool) bool {
	return isAdmin || deletedAt == nil
}
