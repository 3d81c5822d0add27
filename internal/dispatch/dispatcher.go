// Package dispatch turns matched alerts into best-effort outbound
// notifications, fully decoupled from the request path that created the
// report.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/match"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

// AlertSource reads the active alert set fresh at dispatch time, so a
// deletion that raced ahead of the background task is always honored.
type AlertSource interface {
	ActiveAlerts(ctx context.Context) ([]domain.Alert, error)
}

type SubscriptionStore interface {
	ActiveSubscriptions(ctx context.Context, ownerID string) ([]domain.PushSubscription, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PushSender delivers one push message. A returned error wrapping
// e.ErrPermanentFailure means the endpoint is gone for good.
type PushSender interface {
	Send(ctx context.Context, sub domain.PushSubscription, title, body, url string) error
}

// EmailQueue accepts outbound email jobs; a separate courier drains it.
type EmailQueue interface {
	Enqueue(ctx context.Context, job domain.EmailJob) error
}

// ContactDecrypter recovers the plaintext contact address for an alert's
// email notification.
type ContactDecrypter interface {
	Decrypt(encrypted string) (string, error)
}

type Dispatcher struct {
	alerts  AlertSource
	subs    SubscriptionStore
	matcher match.Matcher
	push    PushSender
	emails  EmailQueue
	crypto  ContactDecrypter
	logger  *slog.Logger
	timeout time.Duration
}

func NewDispatcher(
	alerts AlertSource,
	subs SubscriptionStore,
	matcher match.Matcher,
	push PushSender,
	emails EmailQueue,
	crypto ContactDecrypter,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		alerts:  alerts,
		subs:    subs,
		matcher: matcher,
		push:    push,
		emails:  emails,
		crypto:  crypto,
		logger:  logger,
		timeout: 30 * time.Second,
	}
}

// DispatchAsync runs the matching and fan-out on a detached context.
// Canceling the originating request must not cancel in-flight delivery;
// the side effect of alerting someone should complete even if the
// submitter's connection drops.
func (d *Dispatcher) DispatchAsync(report domain.Report) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.Dispatch(ctx, report); err != nil {
			d.logger.Error("dispatch failed",
				slog.String("report_id", report.ID.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// Dispatch matches the report against the current active alerts and fans
// out push and email notifications. The report is passed by value; a soft
// delete racing this call does not retract a notification already in
// flight.
func (d *Dispatcher) Dispatch(ctx context.Context, report domain.Report) error {
	alerts, err := d.alerts.ActiveAlerts(ctx)
	if err != nil {
		return e.Wrap("dispatch.ActiveAlerts", err)
	}

	matched := d.matcher.Match(report, alerts)
	d.logger.Info("report matched against alerts",
		slog.String("report_id", report.ID.String()),
		slog.Int("active", len(alerts)),
		slog.Int("matched", len(matched)),
	)

	for _, alert := range matched {
		if alert.UsePush {
			d.sendPushes(ctx, report, alert)
		}
		if alert.UseEmail {
			d.enqueueEmail(ctx, report, alert)
		}
	}
	return nil
}

// sendPushes notifies every live subscription of the alert owner. A
// failure for one subscription never aborts the rest of the batch.
func (d *Dispatcher) sendPushes(ctx context.Context, report domain.Report, alert domain.Alert) {
	subs, err := d.subs.ActiveSubscriptions(ctx, alert.OwnerID)
	if err != nil {
		d.logger.Error("load push subscriptions failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
		return
	}

	title, body, url := notificationContent(report)

	for _, sub := range subs {
		err := d.push.Send(ctx, sub, title, body, url)
		if err == nil {
			continue
		}

		if errors.Is(err, e.ErrPermanentFailure) {
			// Endpoint is gone; retire the subscription so the next
			// match does not retry it.
			d.logger.Warn("retiring dead push subscription",
				slog.String("subscription_id", sub.ID.String()),
				slog.Any("error", err),
			)
			if delErr := d.subs.SoftDelete(ctx, sub.ID); delErr != nil {
				d.logger.Error("soft-delete subscription failed",
					slog.String("subscription_id", sub.ID.String()),
					slog.Any("error", delErr),
				)
			}
			continue
		}

		// Transient: leave the subscription alone. There is no retry
		// schedule; the retry is the next matching report.
		d.logger.Warn("push delivery failed",
			slog.String("subscription_id", sub.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (d *Dispatcher) enqueueEmail(ctx context.Context, report domain.Report, alert domain.Alert) {
	to, err := d.crypto.Decrypt(alert.EncryptedContact)
	if err != nil {
		d.logger.Error("decrypt alert contact failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
		return
	}

	title, body, _ := notificationContent(report)
	job := domain.EmailJob{To: to, Subject: title, Body: body}
	if err := d.emails.Enqueue(ctx, job); err != nil {
		d.logger.Error("enqueue email failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
		return
	}

	d.logger.Info("alert email enqueued", slog.String("alert_id", alert.ID.String()))
}

func notificationContent(report domain.Report) (title, body, url string) {
	title = "New sighting reported in your watch area"
	if report.IsEmergency {
		title = "EMERGENCY: sighting reported in your watch area"
	}
	body = report.Message
	if body == "" {
		body = fmt.Sprintf("A sighting was reported at %.4f, %.4f", report.Lat, report.Lng)
	}
	url = fmt.Sprintf("/map?lat=%f&lng=%f", report.Lat, report.Lng)
	return title, body, url
}
