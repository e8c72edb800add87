package domain

import (
	"github.com/draftea/booking-system/shared/models"
)

// BookingStatus represents the saga state of a booking
type BookingStatus string

const (
	BookingStatusPending       BookingStatus = "PENDING"
	BookingStatusConfirmed     BookingStatus = "CONFIRMED"
	BookingStatusCancelled     BookingStatus = "CANCELLED"
	BookingStatusPaymentFailed BookingStatus = "PAYMENT_FAILED"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusPaymentFailed:
		return true
	}
	return false
}

// Booking is a user's claim on a number of tickets for one event.
// TotalPrice is frozen at creation from the price seen during the availability check.
// InventoryReserved is set once the event service accepted the decrement.
type Booking struct {
	ID                models.ID
	UserID            models.ID
	EventID           models.ID
	TicketCount       int
	TotalPrice        models.Money
	Status            BookingStatus
	InventoryReserved bool
	Timestamps        models.Timestamps
	Version           models.Version
}

// NewBooking creates a PENDING booking. The ID is assigned by the ledger.
func NewBooking(userID, eventID models.ID, ticketCount int, unitPrice models.Money) (*Booking, error) {
	if userID.IsEmpty() {
		return nil, ValidationError("user ID is required")
	}
	if eventID.IsEmpty() {
		return nil, ValidationError("event ID is required")
	}
	if ticketCount <= 0 {
		return nil, ValidationError("ticket count must be positive")
	}
	if unitPrice.Amount < 0 {
		return nil, ValidationError("unit price cannot be negative")
	}

	return &Booking{
		UserID:      userID,
		EventID:     eventID,
		TicketCount: ticketCount,
		TotalPrice:  unitPrice.Multiply(ticketCount),
		Status:      BookingStatusPending,
		Timestamps:  models.NewTimestamps(),
		Version:     models.NewVersion(),
	}, nil
}

// Confirm moves a PENDING booking to CONFIRMED
func (b *Booking) Confirm() error {
	if b.Status != BookingStatusPending {
		return ConflictError(nil, "booking cannot be confirmed in state %s", b.Status)
	}
	b.transition(BookingStatusConfirmed)
	return nil
}

// FailPayment moves a PENDING booking to PAYMENT_FAILED
func (b *Booking) FailPayment() error {
	if b.Status != BookingStatusPending {
		return ConflictError(nil, "booking cannot fail payment in state %s", b.Status)
	}
	b.transition(BookingStatusPaymentFailed)
	return nil
}

// Cancel moves any non-cancelled booking to CANCELLED
func (b *Booking) Cancel() error {
	if b.Status == BookingStatusCancelled {
		return ConflictError(nil, "booking is already cancelled")
	}
	b.transition(BookingStatusCancelled)
	return nil
}

// HoldsInventory reports whether tickets were decremented for this booking and
// not yet given back. A confirmed booking whose decrement failed holds none.
func (b *Booking) HoldsInventory() bool {
	return b.Status == BookingStatusConfirmed && b.InventoryReserved
}

// Clone returns a copy safe to hand to callers
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func (b *Booking) transition(status BookingStatus) {
	b.Status = status
	b.Timestamps = b.Timestamps.Update()
	b.Version = b.Version.Update()
}
