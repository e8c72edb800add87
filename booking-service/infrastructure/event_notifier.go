package infrastructure

import (
	"context"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/events"
	"github.com/draftea/booking-system/shared/models"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

var _ domain.Notifier = (*EventNotifier)(nil)

// EventNotifier wraps booking notifications in an event envelope and hands
// them to whichever broker publisher is configured
type EventNotifier struct {
	publisher events.Publisher
	source    string
}

func NewEventNotifier(publisher events.Publisher, source string) *EventNotifier {
	return &EventNotifier{publisher: publisher, source: source}
}

func (n *EventNotifier) Publish(ctx context.Context, notification domain.BookingNotification) error {
	topic := notification.Topic()
	if topic == "" {
		return errors.Errorf("no notification topic for status %s", notification.Status)
	}

	event := events.NewEvent(models.ID(notification.BookingID), topic, notification).
		WithMetadata("source", n.source).
		WithMetadata("status", notification.Status.String())

	status := "success"
	err := n.publisher.Publish(ctx, event)
	if err != nil {
		status = "error"
		err = errors.Wrapf(err, "failed to publish %s", topic)
	}

	telemetry.RecordCounter(ctx, "events_published_total", "Total events published", 1,
		attribute.String("topic", topic.String()),
		attribute.String("status", status),
	)

	return err
}
