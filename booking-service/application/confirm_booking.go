package application

import (
	"context"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// Confirm charges a PENDING booking. Any other state is rejected with Conflict.
// Decline and processor failures behave as in CreateAndConfirm.
func (s *BookingSaga) Confirm(ctx context.Context, bookingID string) (result *BookingResult, err error) {
	ctx, done := startOperation(ctx, "confirm_booking", attribute.String("booking_id", bookingID))
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

	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ConflictError(nil, "booking cannot be confirmed in state %s", booking.Status)
	}

	return s.settle(ctx, booking, "", nil)
}

// settle charges a PENDING booking and records the outcome. eventName is
// re-queried for the notification when empty.
func (s *BookingSaga) settle(ctx context.Context, booking *domain.Booking, eventName string, effects domain.SideEffects) (*BookingResult, error) {
	charge, err := s.payments.Charge(ctx, booking.TotalPrice, booking.UserID)
	if err == nil && charge == nil {
		err = errors.New("payment processor returned no result")
	}
	if err != nil {
		return &BookingResult{Booking: booking.Clone(), SideEffects: effects},
			domain.UpstreamError(err, "payment processor unavailable")
	}

	// The charge has happened. Record it even if the caller has gone away.
	persistCtx := context.WithoutCancel(ctx)

	if !charge.Success {
		if err := booking.FailPayment(); err != nil {
			return nil, err
		}
		if err := s.ledger.UpdateBookingStatus(persistCtx, booking); err != nil {
			return nil, ledgerError(err, "failed to record declined payment")
		}
		return &BookingResult{Booking: booking.Clone(), SideEffects: effects},
			domain.PaymentDeclinedError(charge.DeclineReason)
	}

	payment := domain.NewPayment(booking, charge.TransactionID)
	if err := booking.Confirm(); err != nil {
		return nil, err
	}

	if err := s.ledger.ConfirmBooking(persistCtx, booking, payment); err != nil {
		logOrphanedCharge(persistCtx, booking, charge.TransactionID, err)
		return nil, ledgerError(err, "failed to record payment")
	}

	reserve := s.reserveInventory(persistCtx, booking)
	effects = append(effects, reserve)
	if !reserve.Failed() {
		effects = append(effects, s.recordReservation(persistCtx, booking))
	}

	if eventName == "" {
		name, lookup := s.lookupEventName(persistCtx, booking.EventID)
		effects = append(effects, lookup)
		eventName = name
	}

	effects = append(effects, s.notify(persistCtx, booking, eventName))

	return &BookingResult{Booking: booking.Clone(), Payment: payment, SideEffects: effects}, nil
}
