package application

import (
	"context"

	"github.com/draftea/booking-system/booking-service/domain"
	"go.opentelemetry.io/otel/attribute"
)

// Cancel marks a booking CANCELLED, then releases its tickets if the booking
// recorded a successful decrement and publishes the cancellation. Only the
// state change can fail the operation.
func (s *BookingSaga) Cancel(ctx context.Context, bookingID string) (result *BookingResult, err error) {
	ctx, done := startOperation(ctx, "cancel_booking", attribute.String("booking_id", bookingID))
	defer func() { done(err) }()

	id, err := parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	release, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	heldInventory := booking.HoldsInventory()

	if err := booking.Cancel(); err != nil {
		return nil, err
	}

	if err := s.ledger.UpdateBookingStatus(ctx, booking); err != nil {
		return nil, ledgerError(err, "failed to cancel booking")
	}

	persistCtx := context.WithoutCancel(ctx)

	eventName, lookup := s.lookupEventName(persistCtx, booking.EventID)
	effects := domain.SideEffects{lookup}

	if heldInventory {
		effects = append(effects, s.releaseInventory(persistCtx, booking))
	}

	effects = append(effects, s.notify(persistCtx, booking, eventName))

	return &BookingResult{Booking: booking.Clone(), SideEffects: effects}, nil
}
