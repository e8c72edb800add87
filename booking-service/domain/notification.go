package domain

import (
	"time"

	"github.com/draftea/booking-system/shared/events"
)

// UnknownEventName is used when the event could not be looked up for a notification
const UnknownEventName = "Unknown Event"

// BookingNotification is the payload published after every successful transition
type BookingNotification struct {
	BookingID  string        `json:"booking_id"`
	UserID     string        `json:"user_id"`
	UserEmail  string        `json:"user_email"`
	EventID    string        `json:"event_id"`
	EventName  string        `json:"event_name"`
	Tickets    int           `json:"tickets"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	Timestamp  time.Time     `json:"timestamp"`
}

// NewBookingNotification snapshots a booking for publishing
func NewBookingNotification(booking *Booking, email, eventName string) BookingNotification {
	if eventName == "" {
		eventName = UnknownEventName
	}
	return BookingNotification{
		BookingID:  booking.ID.String(),
		UserID:     booking.UserID.String(),
		UserEmail:  email,
		EventID:    booking.EventID.String(),
		EventName:  eventName,
		Tickets:    booking.TicketCount,
		TotalPrice: booking.TotalPrice.Decimal(),
		Status:     booking.Status,
		Timestamp:  time.Now().UTC(),
	}
}

// Topic returns the notification topic for the booking status, or "" when none is published
func (n BookingNotification) Topic() events.Topic {
	switch n.Status {
	case BookingStatusPending:
		return events.BookingPendingTopic
	case BookingStatusConfirmed:
		return events.BookingConfirmedTopic
	case BookingStatusCancelled:
		return events.BookingCancelledTopic
	}
	return ""
}
