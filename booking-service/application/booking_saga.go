package application

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"github.com/draftea/booking-system/shared/telemetry"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CreateBookingCommand requests tickets for an event
type CreateBookingCommand struct {
	UserID  string `json:"user_id" validate:"required"`
	EventID string `json:"event_id" validate:"required"`
	Tickets int    `json:"tickets" validate:"gt=0"`
}

// BookingResult is a snapshot of a booking after an operation.
// SideEffects lists the best-effort steps that ran after the transition was durable.
type BookingResult struct {
	Booking     *domain.Booking
	Payment     *domain.Payment
	SideEffects domain.SideEffects
}

// BookingSaga coordinates the event, payment and notification services around
// the booking ledger. Operations run their remote calls in strict sequence;
// there is no rollback of calls already issued.
type BookingSaga struct {
	ledger       domain.LedgerStore
	availability domain.AvailabilityClient
	payments     domain.PaymentClient
	notifier     domain.Notifier
	users        domain.UserDirectory
	locker       domain.BookingLocker
	validate     *validator.Validate
}

// Option configures a BookingSaga
type Option func(*BookingSaga)

// WithLocker serializes Confirm and Cancel per booking
func WithLocker(locker domain.BookingLocker) Option {
	return func(s *BookingSaga) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// NewBookingSaga creates a new BookingSaga. Without WithLocker, concurrent
// operations on one booking are only guarded by the ledger's version check.
func NewBookingSaga(
	ledger domain.LedgerStore,
	availability domain.AvailabilityClient,
	payments domain.PaymentClient,
	notifier domain.Notifier,
	users domain.UserDirectory,
	opts ...Option,
) *BookingSaga {
	s := &BookingSaga{
		ledger:       ledger,
		availability: availability,
		payments:     payments,
		notifier:     notifier,
		users:        users,
		locker:       noopLocker{},
		validate:     newValidator(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, models.ID) (func(), error) {
	return func() {}, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *BookingSaga) validateCommand(cmd *CreateBookingCommand) error {
	if cmd == nil {
		return domain.ValidationError("command is required")
	}

	cmd.UserID = strings.TrimSpace(cmd.UserID)
	cmd.EventID = strings.TrimSpace(cmd.EventID)

	err := s.validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.ValidationError("invalid booking request")
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return domain.ValidationError("%s is required", fe.Field())
	case "gt":
		return domain.ValidationError("%s must be greater than %s", fe.Field(), fe.Param())
	}
	return domain.ValidationError("%s is invalid", fe.Field())
}

func parseBookingID(raw string) (models.ID, error) {
	id := models.ID(strings.TrimSpace(raw))
	if id.IsEmpty() {
		return "", domain.ValidationError("booking ID is required")
	}
	return id, nil
}

// lock takes the per-booking lock and maps a held lock to Conflict
func (s *BookingSaga) lock(ctx context.Context, id models.ID) (func(), error) {
	release, err := s.locker.Acquire(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingLocked) {
			return nil, domain.ConflictError(err, "booking %s is being modified by another request", id)
		}
		return nil, domain.UpstreamError(err, "booking lock unavailable")
	}
	return release, nil
}

func (s *BookingSaga) loadBooking(ctx context.Context, id models.ID) (*domain.Booking, error) {
	booking, err := s.ledger.GetBooking(ctx, id)
	if err != nil {
		return nil, domain.UpstreamError(err, "failed to load booking")
	}
	if booking == nil {
		return nil, domain.NotFoundError("booking %s not found", id)
	}
	return booking, nil
}

// ledgerError maps a failed ledger write to Conflict when a concurrent writer won
func ledgerError(err error, message string) error {
	if errors.Is(err, domain.ErrConcurrentModification) || errors.Is(err, domain.ErrPaymentExists) {
		return domain.ConflictError(err, "booking was modified by a concurrent request")
	}
	return domain.UpstreamError(err, "%s", message)
}

// startOperation opens a span and returns a func recording its outcome
func startOperation(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, operation, trace.WithAttributes(attrs...))

	return ctx, func(err error) {
		defer span.End()

		status := "success"
		if err != nil {
			status = "error"
			if domain.IsKind(err, domain.KindPaymentDeclined) {
				status = "declined"
			}
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.kind", string(domain.KindOf(err))))
		}

		telemetry.RecordCounter(ctx, "booking_saga_operations_total", "Total booking saga operations", 1,
			attribute.String("operation", operation),
			attribute.String("status", status),
		)

		telemetry.RecordHistogram(ctx, "booking_saga_operation_duration_seconds", "Booking saga operation duration", time.Since(start).Seconds(),
			attribute.String("operation", operation),
			attribute.String("status", status),
		)
	}
}
