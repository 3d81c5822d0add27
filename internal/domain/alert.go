package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert is a user-registered geofence. Only verified, non-deleted alerts
// participate in matching.
type Alert struct {
	ID               uuid.UUID  `json:"id"`
	Lat              float64    `json:"lat" validate:"lat"`
	Lng              float64    `json:"lng" validate:"lng"`
	RadiusKM         float64    `json:"radius_km" validate:"required,radius_km"`
	Message          string     `json:"message,omitempty"`
	// OwnerID doubles as the delete credential for the public
	// owner-scoped delete, so it must never reach a wire payload.
	OwnerID          string     `json:"-"`
	EncryptedContact string     `json:"-"`
	ContactHash      string     `json:"-"`
	Verified         bool       `json:"verified"`
	VerifyToken      string     `json:"-"`
	UsePush          bool       `json:"use_push"`
	UseEmail         bool       `json:"use_email"`
	CreatedAt        time.Time  `json:"created_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// Matchable reports whether the alert may participate in geofence matching.
func (a Alert) Matchable() bool {
	return a.Verified && a.DeletedAt == nil
}

// PushSubscription is one push endpoint registered by an alert owner.
// Soft-deleted when the endpoint reports a permanent delivery failure.
type PushSubscription struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Endpoint  string     `json:"endpoint"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
