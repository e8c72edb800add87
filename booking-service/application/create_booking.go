package application

import (
	"context"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"go.opentelemetry.io/otel/attribute"
)

// CreateAndConfirm books tickets and charges for them in one operation.
//
// A declined charge returns the PAYMENT_FAILED booking together with a
// PaymentDeclined error. If the processor cannot be reached the booking stays
// PENDING and is returned with the UpstreamFailure error so it can be confirmed later.
func (s *BookingSaga) CreateAndConfirm(ctx context.Context, cmd *CreateBookingCommand) (result *BookingResult, err error) {
	ctx, done := startOperation(ctx, "create_and_confirm", commandAttributes(cmd)...)
	defer func() { done(err) }()

	booking, event, effects, err := s.openBooking(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return s.settle(ctx, booking, event.Name, effects)
}

// CreatePending books tickets without charging. Inventory is not decremented
// until the booking is confirmed.
func (s *BookingSaga) CreatePending(ctx context.Context, cmd *CreateBookingCommand) (result *BookingResult, err error) {
	ctx, done := startOperation(ctx, "create_pending", commandAttributes(cmd)...)
	defer func() { done(err) }()

	booking, _, effects, err := s.openBooking(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return &BookingResult{Booking: booking.Clone(), SideEffects: effects}, nil
}

// openBooking checks the event and records a PENDING booking priced at the
// unit price seen now. Nothing is persisted if any check fails.
func (s *BookingSaga) openBooking(ctx context.Context, cmd *CreateBookingCommand) (*domain.Booking, *domain.EventInfo, domain.SideEffects, error) {
	if err := s.validateCommand(cmd); err != nil {
		return nil, nil, nil, err
	}

	userID := models.ID(cmd.UserID)
	eventID := models.ID(cmd.EventID)

	event, err := s.availability.GetEvent(ctx, eventID)
	if err != nil {
		return nil, nil, nil, domain.UpstreamError(err, "event service unavailable")
	}
	if event == nil {
		return nil, nil, nil, domain.NotFoundError("event %s not found", eventID)
	}

	available, err := s.availability.CheckAvailability(ctx, eventID, cmd.Tickets)
	if err != nil {
		return nil, nil, nil, domain.UpstreamError(err, "event service unavailable")
	}
	if !available {
		return nil, nil, nil, domain.CapacityError("not enough tickets available for event %s", eventID)
	}

	booking, err := domain.NewBooking(userID, eventID, cmd.Tickets, event.UnitPrice)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := s.ledger.CreateBooking(ctx, booking); err != nil {
		return nil, nil, nil, domain.UpstreamError(err, "failed to record booking")
	}

	effects := domain.SideEffects{s.notify(ctx, booking, event.Name)}

	return booking, event, effects, nil
}

func commandAttributes(cmd *CreateBookingCommand) []attribute.KeyValue {
	if cmd == nil {
		return nil
	}
	return []attribute.KeyValue{
		attribute.String("user_id", cmd.UserID),
		attribute.String("event_id", cmd.EventID),
		attribute.Int("tickets", cmd.Tickets),
	}
}
