package application

import (
	"context"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// RecordNotificationCommand is a booking notification received in event EventID
type RecordNotificationCommand struct {
	EventID string
	Payload domain.BookingPayload
}

// RecordNotification stores a booking notification and, for confirmations and
// cancellations, delivers it to the customer
type RecordNotification struct {
	store  domain.NotificationStore
	sender domain.Sender
}

// NewRecordNotification creates a new RecordNotification use case
func NewRecordNotification(store domain.NotificationStore, sender domain.Sender) *RecordNotification {
	return &RecordNotification{
		store:  store,
		sender: sender,
	}
}

// Execute is safe to call again with the same event: a notification already
// recorded is skipped. A failed send leaves the record with sent=false.
func (uc *RecordNotification) Execute(ctx context.Context, cmd *RecordNotificationCommand) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "RecordNotification.Execute")
	defer span.End()

	outcome := "recorded"
	defer func() {
		if err != nil {
			outcome = "error"
			span.RecordError(err)
		}
		telemetry.RecordCounter(ctx, "notifications_processed_total", "Booking notifications processed", 1,
			attribute.String("status", cmd.Payload.Status),
			attribute.String("outcome", outcome),
		)
	}()

	notification, err := domain.NewNotification(cmd.EventID, cmd.Payload)
	if err != nil {
		return err
	}

	log := logger.WithContext(ctx).With(
		"event_id", cmd.EventID,
		"booking_id", notification.BookingID,
		"status", notification.Status,
	)

	if err := uc.store.Insert(ctx, notification); err != nil {
		if errors.Is(err, domain.ErrDuplicateNotification) {
			outcome = "duplicate"
			log.Info("notification already recorded, skipping")
			return nil
		}
		return errors.Wrap(err, "failed to store notification")
	}

	if !notification.ShouldSend() {
		return nil
	}

	var deliverErr error
	outcome, deliverErr = deliver(ctx, uc.store, uc.sender, notification)
	if deliverErr != nil {
		log.Error("notification delivery incomplete",
			"to", notification.UserEmail,
			"type", notification.Type,
			"outcome", outcome,
			"error", deliverErr,
		)
		return nil
	}

	log.Info("notification sent", "to", notification.UserEmail, "type", notification.Type)

	return nil
}
