package application

import (
	"context"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/pkg/errors"
)

const (
	outcomeSent       = "sent"
	outcomeSendFailed = "send_failed"
	outcomeMarkFailed = "mark_failed"
)

// deliver sends n over its channel and marks it sent. The outcome labels the
// processed counter. A mark failure means the customer was contacted but a
// later resend will contact them again.
func deliver(ctx context.Context, store domain.NotificationStore, sender domain.Sender, n *domain.Notification) (string, error) {
	if err := sender.Send(ctx, n); err != nil {
		return outcomeSendFailed, errors.Wrapf(err, "failed to send %s notification", n.Type)
	}

	if err := store.MarkSent(ctx, n.ID); err != nil {
		return outcomeMarkFailed, errors.Wrap(err, "failed to mark notification as sent")
	}

	return outcomeSent, nil
}
