package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/pkg/errors"
)

var _ domain.Sender = (*LogEmailSender)(nil)

// LogEmailSender renders the customer email and logs it instead of sending it.
// There is no mail provider integration.
type LogEmailSender struct {
	log *slog.Logger
}

func NewLogEmailSender(log *slog.Logger) *LogEmailSender {
	return &LogEmailSender{log: log}
}

func (s *LogEmailSender) Send(ctx context.Context, n *domain.Notification) error {
	subject, body, err := renderEmail(n)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sending email notification",
		"to", n.UserEmail,
		"subject", subject,
		"body", body,
		"booking_id", n.BookingID,
	)
	return nil
}

func renderEmail(n *domain.Notification) (subject, body string, err error) {
	eventName := n.EventName
	if eventName == "" {
		eventName = "your event"
	}

	switch n.Status {
	case domain.StatusConfirmed:
		subject = fmt.Sprintf("Your Booking Confirmation #%s", n.BookingID)
		body = fmt.Sprintf("Your booking for %s has been confirmed.\n\n"+
			"Booking ID: %s\nEvent: %s\nTickets: %d\nTotal Price: $%.2f\n",
			eventName, n.BookingID, eventName, n.Tickets, n.TotalPrice)
	case domain.StatusCancelled:
		subject = fmt.Sprintf("Your Booking Cancellation #%s", n.BookingID)
		body = fmt.Sprintf("Your booking for %s has been cancelled.\n\n"+
			"Booking ID: %s\nEvent: %s\nTickets: %d\n",
			eventName, n.BookingID, eventName, n.Tickets)
	default:
		return "", "", errors.Errorf("no email for status %s", n.Status)
	}

	return subject, body, nil
}
