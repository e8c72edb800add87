package application

import (
	"context"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultResendLimit caps one resend pass when no limit is given
const DefaultResendLimit = 50

// ResendSummary reports one resend pass
type ResendSummary struct {
	Attempted int `json:"attempted"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}

// ResendUnsent retries delivery of confirmations and cancellations whose
// earlier send failed, oldest first
type ResendUnsent struct {
	store  domain.NotificationStore
	sender domain.Sender
}

func NewResendUnsent(store domain.NotificationStore, sender domain.Sender) *ResendUnsent {
	return &ResendUnsent{
		store:  store,
		sender: sender,
	}
}

// Execute makes one pass over at most limit unsent notifications. Individual
// failures are counted, not returned.
func (uc *ResendUnsent) Execute(ctx context.Context, limit int64) (*ResendSummary, error) {
	ctx, span := telemetry.StartSpan(ctx, "ResendUnsent.Execute")
	defer span.End()

	if limit < 1 {
		limit = DefaultResendLimit
	}

	unsent, err := uc.store.Find(ctx, domain.NotificationFilter{
		Statuses:    []string{domain.StatusConfirmed, domain.StatusCancelled},
		UnsentOnly:  true,
		Limit:       limit,
		OldestFirst: true,
	})
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to load unsent notifications")
	}

	summary := &ResendSummary{}
	for _, n := range unsent {
		if ctx.Err() != nil {
			break
		}

		summary.Attempted++
		outcome, err := deliver(ctx, uc.store, uc.sender, n)
		telemetry.RecordCounter(ctx, "notifications_resent_total", "Unsent notifications retried", 1,
			attribute.String("status", n.Status),
			attribute.String("outcome", outcome),
		)
		if err != nil {
			summary.Failed++
			logger.WithContext(ctx).Error("resend failed",
				"notification_id", n.ID,
				"booking_id", n.BookingID,
				"outcome", outcome,
				"error", err,
			)
			continue
		}
		summary.Sent++
	}

	logger.WithContext(ctx).Info("resend pass finished",
		"attempted", summary.Attempted,
		"sent", summary.Sent,
		"failed", summary.Failed,
	)

	return summary, nil
}
