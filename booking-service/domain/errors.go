package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies saga failures so callers can branch without string matching
type ErrorKind string

const (
	KindValidation      ErrorKind = "VALIDATION"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindConflict        ErrorKind = "CONFLICT"
	KindCapacity        ErrorKind = "CAPACITY"
	KindUpstreamFailure ErrorKind = "UPSTREAM_FAILURE"
	KindPaymentDeclined ErrorKind = "PAYMENT_DECLINED"
)

// Error is the typed failure returned by every saga operation.
// Message is safe to show to clients; Err keeps the collaborator detail.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func ValidationError(format string, args ...any) *Error {
	return newError(KindValidation, nil, format, args...)
}

func NotFoundError(format string, args ...any) *Error {
	return newError(KindNotFound, nil, format, args...)
}

func ConflictError(err error, format string, args ...any) *Error {
	return newError(KindConflict, err, format, args...)
}

func CapacityError(format string, args ...any) *Error {
	return newError(KindCapacity, nil, format, args...)
}

func UpstreamError(err error, format string, args ...any) *Error {
	return newError(KindUpstreamFailure, err, format, args...)
}

func PaymentDeclinedError(reason string) *Error {
	if reason == "" {
		reason = "payment declined"
	}
	return &Error{Kind: KindPaymentDeclined, Message: reason}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when there is none
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

var (
	// ErrConcurrentModification is returned by ledger writes whose version check failed
	ErrConcurrentModification = errors.New("booking was modified concurrently")

	// ErrPaymentExists is returned when a payment row already exists for a booking
	ErrPaymentExists = errors.New("payment already recorded for booking")

	// ErrBookingLocked is returned by a BookingLocker when another operation holds the booking
	ErrBookingLocked = errors.New("booking is locked by another operation")
)
