package application

import (
	"context"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/pkg/errors"
)

// DefaultPendingLimit caps the pending listing when no limit is given
const DefaultPendingLimit = 10

// PendingNotifications is a page of PENDING notifications and how many exist
type PendingNotifications struct {
	Notifications []*domain.Notification
	Total         int64
	Limit         int64
}

// ListNotifications answers the read API. All listings are newest first.
type ListNotifications struct {
	store domain.NotificationStore
}

func NewListNotifications(store domain.NotificationStore) *ListNotifications {
	return &ListNotifications{store: store}
}

func (uc *ListNotifications) All(ctx context.Context) ([]*domain.Notification, error) {
	return uc.find(ctx, "ListNotifications.All", domain.NotificationFilter{})
}

func (uc *ListNotifications) ForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return uc.find(ctx, "ListNotifications.ForUser", domain.NotificationFilter{UserID: userID})
}

func (uc *ListNotifications) ForBooking(ctx context.Context, bookingID string) ([]*domain.Notification, error) {
	return uc.find(ctx, "ListNotifications.ForBooking", domain.NotificationFilter{BookingID: bookingID})
}

// ByStatus accepts the status in any case and returns ErrInvalidStatus for
// anything but PENDING, CONFIRMED or CANCELLED
func (uc *ListNotifications) ByStatus(ctx context.Context, rawStatus string) (string, []*domain.Notification, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return "", nil, err
	}

	notifications, err := uc.find(ctx, "ListNotifications.ByStatus", domain.NotificationFilter{Statuses: []string{status}})
	return status, notifications, err
}

// Pending returns the newest limit PENDING notifications. A limit below one
// falls back to DefaultPendingLimit.
func (uc *ListNotifications) Pending(ctx context.Context, limit int64) (*PendingNotifications, error) {
	ctx, span := telemetry.StartSpan(ctx, "ListNotifications.Pending")
	defer span.End()

	if limit < 1 {
		limit = DefaultPendingLimit
	}

	filter := domain.NotificationFilter{Statuses: []string{domain.StatusPending}}

	total, err := uc.store.Count(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to count pending notifications")
	}

	filter.Limit = limit
	notifications, err := uc.store.Find(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list pending notifications")
	}

	return &PendingNotifications{Notifications: notifications, Total: total, Limit: limit}, nil
}

func (uc *ListNotifications) find(ctx context.Context, spanName string, filter domain.NotificationFilter) ([]*domain.Notification, error) {
	ctx, span := telemetry.StartSpan(ctx, spanName)
	defer span.End()

	notifications, err := uc.store.Find(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list notifications")
	}
	return notifications, nil
}
