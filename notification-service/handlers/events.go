package handlers

import (
	"context"

	"github.com/draftea/booking-system/notification-service/application"
	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/draftea/booking-system/shared/events"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/pkg/errors"
)

var _ events.EventHandler = (*NotificationEventHandlers)(nil)

// NotificationEventHandlers consumes booking notification events
type NotificationEventHandlers struct {
	recordNotification *application.RecordNotification
}

// NewNotificationEventHandlers creates new notification event handlers
func NewNotificationEventHandlers(recordNotification *application.RecordNotification) *NotificationEventHandlers {
	return &NotificationEventHandlers{recordNotification: recordNotification}
}

// Handle implements the events.EventHandler interface. Events outside
// booking.* are ignored; malformed notifications are dropped so they are not redelivered.
func (h *NotificationEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	if !event.Topic.Matches(events.BookingTopicPattern) {
		return nil
	}

	var payload domain.BookingPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		logger.WithContext(ctx).Error("dropping undecodable booking notification",
			"event_id", event.ID,
			"topic", event.Topic,
			"error", err,
		)
		return nil
	}

	err := h.recordNotification.Execute(ctx, &application.RecordNotificationCommand{
		EventID: event.ID.String(),
		Payload: payload,
	})
	if errors.Is(err, domain.ErrInvalidNotification) {
		logger.WithContext(ctx).Error("dropping invalid booking notification",
			"event_id", event.ID,
			"topic", event.Topic,
			"error", err,
		)
		return nil
	}

	return err
}
