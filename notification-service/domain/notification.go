package domain

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type NotificationType string

const (
	NotificationTypeEmail NotificationType = "EMAIL"
	NotificationTypeSMS   NotificationType = "SMS"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

var (
	// ErrDuplicateNotification is returned by Insert when the event was already recorded
	ErrDuplicateNotification = errors.New("notification already recorded")

	ErrInvalidNotification = errors.New("invalid notification")

	ErrInvalidStatus = errors.New("invalid status")
)

// ParseNotificationType defaults an empty channel to EMAIL
func ParseNotificationType(raw string) (NotificationType, error) {
	switch t := NotificationType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case "":
		return NotificationTypeEmail, nil
	case NotificationTypeEmail, NotificationTypeSMS:
		return t, nil
	default:
		return "", errors.Wrapf(ErrInvalidNotification, "unknown notification type %q", raw)
	}
}

// ParseStatus accepts a booking status in any case
func ParseStatus(raw string) (string, error) {
	switch status := strings.ToUpper(strings.TrimSpace(raw)); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", errors.Wrapf(ErrInvalidStatus, "%q", raw)
	}
}

// BookingPayload is the booking notification as published by the booking service
type BookingPayload struct {
	BookingID        string  `json:"booking_id"`
	UserID           string  `json:"user_id"`
	UserEmail        string  `json:"user_email"`
	EventID          string  `json:"event_id"`
	EventName        string  `json:"event_name"`
	Tickets          int     `json:"tickets"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"status"`
	NotificationType string  `json:"notification_type,omitempty"`
	Timestamp        string  `json:"timestamp"`
}

// Notification is one received booking notification and its delivery state.
// ID is the ID of the event it arrived in, so redeliveries collapse onto one record.
type Notification struct {
	ID         string
	BookingID  string
	UserID     string
	UserEmail  string
	EventID    string
	EventName  string
	Tickets    int
	TotalPrice float64
	Status     string
	Type       NotificationType
	Sent       bool
	SentAt     *time.Time
	Timestamp  string
	CreatedAt  time.Time
}

// NewNotification validates a payload received in event eventID
func NewNotification(eventID string, payload BookingPayload) (*Notification, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, errors.Wrap(ErrInvalidNotification, "missing event ID")
	}

	var missing []string
	for field, value := range map[string]string{
		"booking_id": payload.BookingID,
		"user_id":    payload.UserID,
		"user_email": payload.UserEmail,
		"event_id":   payload.EventID,
		"status":     payload.Status,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if payload.Tickets <= 0 {
		missing = append(missing, "tickets")
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, errors.Wrapf(ErrInvalidNotification, "missing required fields: %s", strings.Join(missing, ", "))
	}

	switch payload.Status {
	case StatusPending, StatusConfirmed, StatusCancelled:
	default:
		return nil, errors.Wrapf(ErrInvalidNotification, "unknown status %q", payload.Status)
	}

	channel, err := ParseNotificationType(payload.NotificationType)
	if err != nil {
		return nil, err
	}

	timestamp := payload.Timestamp
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	return &Notification{
		ID:         eventID,
		BookingID:  payload.BookingID,
		UserID:     payload.UserID,
		UserEmail:  payload.UserEmail,
		EventID:    payload.EventID,
		EventName:  payload.EventName,
		Tickets:    payload.Tickets,
		TotalPrice: payload.TotalPrice,
		Status:     payload.Status,
		Type:       channel,
		Timestamp:  timestamp,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ShouldSend reports whether the customer is contacted for this status.
// PENDING bookings are recorded only.
func (n *Notification) ShouldSend() bool {
	return n.Status == StatusConfirmed || n.Status == StatusCancelled
}

// NotificationFilter narrows a lookup. Zero fields match everything and a
// zero Limit returns all matches.
type NotificationFilter struct {
	UserID      string
	BookingID   string
	Statuses    []string
	UnsentOnly  bool
	Limit       int64
	OldestFirst bool
}

// NotificationStore persists received notifications
type NotificationStore interface {
	// Insert returns ErrDuplicateNotification when a notification with the same ID exists
	Insert(ctx context.Context, notification *Notification) error
	MarkSent(ctx context.Context, id string) error

	// Find returns matches newest first unless filter.OldestFirst is set
	Find(ctx context.Context, filter NotificationFilter) ([]*Notification, error)
	Count(ctx context.Context, filter NotificationFilter) (int64, error)
}

// Sender delivers a notification to the customer
type Sender interface {
	Send(ctx context.Context, notification *Notification) error
}
