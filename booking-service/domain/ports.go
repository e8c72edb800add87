package domain

import (
	"context"

	"github.com/draftea/booking-system/shared/models"
)

// LedgerStore is the durable record of bookings and payments.
// Get methods return (nil, nil) when the row does not exist.
type LedgerStore interface {
	// CreateBooking persists a new booking, assigning its ID
	CreateBooking(ctx context.Context, booking *Booking) error
	GetBooking(ctx context.Context, id models.ID) (*Booking, error)
	// UpdateBookingStatus applies booking.Status if the stored version is still booking.Version.Previous().
	// Returns ErrConcurrentModification otherwise.
	UpdateBookingStatus(ctx context.Context, booking *Booking) error
	// ConfirmBooking writes the confirmed booking and its payment atomically
	ConfirmBooking(ctx context.Context, booking *Booking, payment *Payment) error
	// MarkInventoryReserved records that the booking's tickets were decremented.
	// It leaves the booking's status and version untouched.
	MarkInventoryReserved(ctx context.Context, id models.ID) error
	GetPaymentForBooking(ctx context.Context, bookingID models.ID) (*Payment, error)
	ListBookingsForUser(ctx context.Context, userID models.ID) ([]*Booking, error)
}

// EventInfo is the part of an event the booking flow needs
type EventInfo struct {
	ID               models.ID
	Name             string
	UnitPrice        models.Money
	AvailableTickets int
}

// AvailabilityClient talks to the event inventory service.
// GetEvent returns (nil, nil) for an unknown event.
type AvailabilityClient interface {
	GetEvent(ctx context.Context, eventID models.ID) (*EventInfo, error)
	CheckAvailability(ctx context.Context, eventID models.ID, count int) (bool, error)
	Reserve(ctx context.Context, eventID models.ID, count int) error
	Release(ctx context.Context, eventID models.ID, count int) error
}

// PaymentClient charges a payer. An error means the outcome is unknown or the
// processor was unreachable; a declined charge is a result with Success=false.
type PaymentClient interface {
	Charge(ctx context.Context, amount models.Money, payerID models.ID) (*ChargeResult, error)
}

// Notifier publishes booking notifications
type Notifier interface {
	Publish(ctx context.Context, notification BookingNotification) error
}

// BookingLocker serializes state-changing operations on one booking.
// Acquire fails with ErrBookingLocked when another holder owns the booking.
type BookingLocker interface {
	Acquire(ctx context.Context, bookingID models.ID) (release func(), err error)
}

// UserDirectory resolves contact details for notifications
type UserDirectory interface {
	EmailFor(ctx context.Context, userID models.ID) string
}
