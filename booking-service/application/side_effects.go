package application

import (
	"context"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/draftea/booking-system/shared/models"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// Steps below never fail the operation that runs them. Failures are logged and
// returned as outcomes so callers and tests can inspect them.

func (s *BookingSaga) notify(ctx context.Context, booking *domain.Booking, eventName string) domain.SideEffectOutcome {
	notification := domain.NewBookingNotification(booking, s.users.EmailFor(ctx, booking.UserID), eventName)

	err := s.notifier.Publish(ctx, notification)
	if err != nil {
		recordSideEffectFailure(ctx, domain.StepNotify)
		logger.WithContext(ctx).Error("failed to publish booking notification",
			"booking_id", booking.ID,
			"status", booking.Status,
			"step", domain.StepNotify,
			"error", err,
		)
	}

	return domain.SideEffectOutcome{Step: domain.StepNotify, Err: err}
}

func (s *BookingSaga) reserveInventory(ctx context.Context, booking *domain.Booking) domain.SideEffectOutcome {
	err := s.availability.Reserve(ctx, booking.EventID, booking.TicketCount)
	if err != nil {
		recordSideEffectFailure(ctx, domain.StepInventoryReserve)
		logger.WithContext(ctx).Error("inventory decrement failed after successful payment, reconciliation required",
			"booking_id", booking.ID,
			"event_id", booking.EventID,
			"tickets", booking.TicketCount,
			"step", domain.StepInventoryReserve,
			"error", err,
		)
	}

	return domain.SideEffectOutcome{Step: domain.StepInventoryReserve, Err: err}
}

// recordReservation marks the booking as holding tickets so Cancel gives them back
func (s *BookingSaga) recordReservation(ctx context.Context, booking *domain.Booking) domain.SideEffectOutcome {
	err := s.ledger.MarkInventoryReserved(ctx, booking.ID)
	if err != nil {
		recordSideEffectFailure(ctx, domain.StepInventoryRecord)
		logger.WithContext(ctx).Error("tickets decremented but not recorded on booking, cancellation will not release them",
			"booking_id", booking.ID,
			"event_id", booking.EventID,
			"tickets", booking.TicketCount,
			"step", domain.StepInventoryRecord,
			"error", err,
		)
		return domain.SideEffectOutcome{Step: domain.StepInventoryRecord, Err: err}
	}

	booking.InventoryReserved = true
	return domain.SideEffectOutcome{Step: domain.StepInventoryRecord}
}

func (s *BookingSaga) releaseInventory(ctx context.Context, booking *domain.Booking) domain.SideEffectOutcome {
	err := s.availability.Release(ctx, booking.EventID, booking.TicketCount)
	if err != nil {
		recordSideEffectFailure(ctx, domain.StepInventoryRelease)
		logger.WithContext(ctx).Error("inventory release failed after cancellation, reconciliation required",
			"booking_id", booking.ID,
			"event_id", booking.EventID,
			"tickets", booking.TicketCount,
			"step", domain.StepInventoryRelease,
			"error", err,
		)
	}

	return domain.SideEffectOutcome{Step: domain.StepInventoryRelease, Err: err}
}

// lookupEventName re-queries the event for notification content
func (s *BookingSaga) lookupEventName(ctx context.Context, eventID models.ID) (string, domain.SideEffectOutcome) {
	event, err := s.availability.GetEvent(ctx, eventID)
	if err == nil && event == nil {
		err = errors.Errorf("event %s not found", eventID)
	}

	if err != nil {
		recordSideEffectFailure(ctx, domain.StepEventLookup)
		logger.WithContext(ctx).Warn("event lookup failed, notifying without event name",
			"event_id", eventID,
			"step", domain.StepEventLookup,
			"error", err,
		)
		return "", domain.SideEffectOutcome{Step: domain.StepEventLookup, Err: err}
	}

	return event.Name, domain.SideEffectOutcome{Step: domain.StepEventLookup}
}

// logOrphanedCharge records a charge that succeeded but could not be attached to the booking
func logOrphanedCharge(ctx context.Context, booking *domain.Booking, transactionID string, err error) {
	telemetry.RecordCounter(ctx, "booking_orphaned_charges_total", "Charges that could not be recorded against a booking", 1)
	logger.WithContext(ctx).Error("charge succeeded but booking could not be confirmed, refund or reconciliation required",
		"booking_id", booking.ID,
		"user_id", booking.UserID,
		"transaction_id", transactionID,
		"amount", booking.TotalPrice.Amount,
		"currency", booking.TotalPrice.Currency,
		"error", err,
	)
}

func recordSideEffectFailure(ctx context.Context, step domain.SideEffectStep) {
	telemetry.RecordCounter(ctx, "booking_side_effect_failures_total", "Best-effort booking steps that failed", 1,
		attribute.String("step", string(step)),
	)
}
