package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/pkg/errors"
)

var _ domain.Sender = (*LogSMSSender)(nil)

// LogSMSSender renders the text message and logs it. Bookings carry no phone
// number, so the recipient is logged as the user ID.
type LogSMSSender struct {
	log *slog.Logger
}

func NewLogSMSSender(log *slog.Logger) *LogSMSSender {
	return &LogSMSSender{log: log}
}

func (s *LogSMSSender) Send(ctx context.Context, n *domain.Notification) error {
	text, err := renderSMS(n)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sending sms notification",
		"user_id", n.UserID,
		"text", text,
		"booking_id", n.BookingID,
	)
	return nil
}

func renderSMS(n *domain.Notification) (string, error) {
	eventName := n.EventName
	if eventName == "" {
		eventName = "your event"
	}

	switch n.Status {
	case domain.StatusConfirmed:
		return fmt.Sprintf("Your booking #%s for %s has been confirmed.\nTickets: %d, Total: $%.2f",
			n.BookingID, eventName, n.Tickets, n.TotalPrice), nil
	case domain.StatusCancelled:
		return fmt.Sprintf("Your booking #%s for %s has been cancelled.",
			n.BookingID, eventName), nil
	default:
		return "", errors.Errorf("no sms for status %s", n.Status)
	}
}

// ChannelSender routes each notification to the sender for its type
type ChannelSender struct {
	senders map[domain.NotificationType]domain.Sender
}

var _ domain.Sender = (*ChannelSender)(nil)

func NewChannelSender(email, sms domain.Sender) *ChannelSender {
	return &ChannelSender{senders: map[domain.NotificationType]domain.Sender{
		domain.NotificationTypeEmail: email,
		domain.NotificationTypeSMS:   sms,
	}}
}

func (s *ChannelSender) Send(ctx context.Context, n *domain.Notification) error {
	sender, ok := s.senders[n.Type]
	if !ok || sender == nil {
		return errors.Errorf("no sender for notification type %q", n.Type)
	}
	return sender.Send(ctx, n)
}
