package domain

import (
	"time"

	"github.com/draftea/booking-system/shared/models"
)

// PaymentStatus of a recorded charge. Only successful charges are recorded.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// PaymentMethodCreditCard is the only method the processors support
const PaymentMethodCreditCard = "CREDIT_CARD"

// Payment is the ledger record of a successful charge for a booking
type Payment struct {
	ID            models.ID
	BookingID     models.ID
	Amount        models.Money
	PaymentMethod string
	TransactionID string
	Status        PaymentStatus
	CreatedAt     time.Time
}

// NewPayment records a successful charge of the booking's frozen total
func NewPayment(booking *Booking, transactionID string) *Payment {
	return &Payment{
		ID:            models.GenerateUUID(),
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		PaymentMethod: PaymentMethodCreditCard,
		TransactionID: transactionID,
		Status:        PaymentStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
}

// ChargeResult is what a PaymentClient reports for a charge attempt that reached the processor
type ChargeResult struct {
	Success       bool
	TransactionID string
	DeclineReason string
}
