package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/crypto"
	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	"github.com/ryanfaricy/wherearethey-sub001/internal/policy"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

type alertService struct {
	alerts  AlertStore
	subs    SubscriptionStore
	policy  *policy.Policy
	crypto  *crypto.ContactCrypto
	bus     *events.Bus
	emails  EmailQueue
	cache   AlertCacheInvalidator
	logger  *slog.Logger
	baseURL string
}

func NewAlertService(
	alerts AlertStore,
	subs SubscriptionStore,
	pol *policy.Policy,
	cc *crypto.ContactCrypto,
	bus *events.Bus,
	emails EmailQueue,
	cache AlertCacheInvalidator,
	logger *slog.Logger,
	baseURL string,
) AlertService {
	return &alertService{
		alerts:  alerts,
		subs:    subs,
		policy:  pol,
		crypto:  cc,
		bus:     bus,
		emails:  emails,
		cache:   cache,
		logger:  logger,
		baseURL: baseURL,
	}
}

// CreateAlert stores the geofence unverified and emails a one-shot
// verification link to the contact address. The plaintext address exists
// only in this call; at rest it is encrypted, and lookups use the
// one-way hash.
func (s *alertService) CreateAlert(ctx context.Context, req domain.CreateAlertRequest) (uuid.UUID, error) {
	if err := s.policy.ValidateIdentifier(req.OwnerID); err != nil {
		return uuid.Nil, err
	}
	if err := s.policy.ValidateNoLinks(req.Message); err != nil {
		return uuid.Nil, err
	}
	if err := s.policy.ValidateAlertLimit(ctx, req.OwnerID); err != nil {
		return uuid.Nil, err
	}

	encrypted, err := s.crypto.Encrypt(req.Contact)
	if err != nil {
		return uuid.Nil, e.Wrap("service.CreateAlert.Encrypt", err)
	}
	token, err := crypto.NewToken()
	if err != nil {
		return uuid.Nil, e.Wrap("service.CreateAlert.NewToken", err)
	}

	alert := &domain.Alert{
		Lat:              req.Lat,
		Lng:              req.Lng,
		RadiusKM:         req.RadiusKM,
		Message:          req.Message,
		OwnerID:          req.OwnerID,
		EncryptedContact: encrypted,
		ContactHash:      s.crypto.ContactHash(req.Contact),
		VerifyToken:      token,
		UsePush:          req.UsePush,
		UseEmail:         req.UseEmail,
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return uuid.Nil, e.Wrap("service.CreateAlert", err)
	}

	s.logger.Info("alert created",
		slog.String("id", alert.ID.String()),
		slog.Float64("radius_km", alert.RadiusKM),
	)

	s.bus.Publish(domain.AlertEvent(domain.ChangeAdded, alert))
	s.cache.Invalidate(ctx)

	job := domain.EmailJob{
		To:      req.Contact,
		Subject: "Confirm your watch area",
		Body: fmt.Sprintf(
			"Open %s/alerts/verify?token=%s to start receiving notifications for your watch area.",
			s.baseURL, token,
		),
	}
	if err := s.emails.Enqueue(ctx, job); err != nil {
		// The alert exists; the owner can request a fresh link later.
		s.logger.Error("enqueue verification email failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}

	return alert.ID, nil
}

// VerifyAlert consumes a verification token. Once verified the alert
// joins the matching set.
func (s *alertService) VerifyAlert(ctx context.Context, token string) error {
	alert, err := s.alerts.VerifyByToken(ctx, token)
	if err != nil {
		return err
	}

	s.logger.Info("alert verified", slog.String("id", alert.ID.String()))

	s.bus.Publish(domain.AlertEvent(domain.ChangeUpdated, alert))
	s.cache.Invalidate(ctx)
	return nil
}

// RegisterPushSubscription attaches a push endpoint to an identifier. A
// permanent delivery failure later retires it without touching the
// alerts themselves.
func (s *alertService) RegisterPushSubscription(ctx context.Context, req domain.RegisterSubscriptionRequest) (uuid.UUID, error) {
	if err := s.policy.ValidateIdentifier(req.OwnerID); err != nil {
		return uuid.Nil, err
	}

	sub := &domain.PushSubscription{
		OwnerID:  req.OwnerID,
		Endpoint: req.Endpoint,
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return uuid.Nil, e.Wrap("service.RegisterPushSubscription", err)
	}

	s.logger.Info("push subscription registered", slog.String("id", sub.ID.String()))
	return sub.ID, nil
}

// DeleteAlert is the owner-scoped soft delete. The Updated event carries
// the deletion mark for admin views; the Deleted event tells public
// views to drop the entry.
func (s *alertService) DeleteAlert(ctx context.Context, id uuid.UUID, ownerID string) error {
	alert, err := s.alerts.SoftDelete(ctx, id, ownerID)
	if err != nil {
		return err
	}

	s.logger.Info("alert deleted by owner", slog.String("id", id.String()))

	s.bus.Publish(domain.AlertEvent(domain.ChangeUpdated, alert))
	s.bus.Publish(domain.AlertEvent(domain.ChangeDeleted, alert))
	s.cache.Invalidate(ctx)
	return nil
}
