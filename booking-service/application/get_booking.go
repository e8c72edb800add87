package application

import (
	"context"
	"strings"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"go.opentelemetry.io/otel/attribute"
)

// Get returns a booking and its payment, if any. It has no side effects.
func (s *BookingSaga) Get(ctx context.Context, bookingID string) (result *BookingResult, err error) {
	ctx, done := startOperation(ctx, "get_booking", attribute.String("booking_id", bookingID))
	defer func() { done(err) }()

	id, err := parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.withPayment(ctx, booking)
}

// GetForUser returns every booking of a user, newest first, each with its payment
func (s *BookingSaga) GetForUser(ctx context.Context, userID string) (results []*BookingResult, err error) {
	ctx, done := startOperation(ctx, "get_user_bookings", attribute.String("user_id", userID))
	defer func() { done(err) }()

	uid := models.ID(strings.TrimSpace(userID))
	if uid.IsEmpty() {
		return nil, domain.ValidationError("user ID is required")
	}

	bookings, err := s.ledger.ListBookingsForUser(ctx, uid)
	if err != nil {
		return nil, domain.UpstreamError(err, "failed to list bookings")
	}

	results = make([]*BookingResult, 0, len(bookings))
	for _, booking := range bookings {
		result, err := s.withPayment(ctx, booking)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *BookingSaga) withPayment(ctx context.Context, booking *domain.Booking) (*BookingResult, error) {
	payment, err := s.ledger.GetPaymentForBooking(ctx, booking.ID)
	if err != nil {
		return nil, domain.UpstreamError(err, "failed to load payment")
	}
	return &BookingResult{Booking: booking, Payment: payment}, nil
}
