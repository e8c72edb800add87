package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"github.com/pkg/errors"
)

var _ domain.LedgerStore = (*MemoryLedger)(nil)

// MemoryLedger is an in-process LedgerStore for local runs and tests.
// Writes are serialized under one mutex and apply the same version check as Postgres.
type MemoryLedger struct {
	mu       sync.RWMutex
	bookings map[models.ID]*domain.Booking
	payments map[models.ID]*domain.Payment // keyed by booking ID
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		bookings: make(map[models.ID]*domain.Booking),
		payments: make(map[models.ID]*domain.Payment),
	}
}

func (l *MemoryLedger) CreateBooking(_ context.Context, booking *domain.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if booking.ID.IsEmpty() {
		booking.ID = models.GenerateUUID()
	}

	if _, exists := l.bookings[booking.ID]; exists {
		return errors.Errorf("booking %s already exists", booking.ID)
	}

	l.bookings[booking.ID] = booking.Clone()
	return nil
}

func (l *MemoryLedger) GetBooking(_ context.Context, id models.ID) (*domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.bookings[id].Clone(), nil
}

func (l *MemoryLedger) UpdateBookingStatus(_ context.Context, booking *domain.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkVersion(booking); err != nil {
		return err
	}

	l.store(booking)
	return nil
}

func (l *MemoryLedger) ConfirmBooking(_ context.Context, booking *domain.Booking, payment *domain.Payment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkVersion(booking); err != nil {
		return err
	}

	if _, exists := l.payments[booking.ID]; exists {
		return domain.ErrPaymentExists
	}

	stored := *payment
	l.store(booking)
	l.payments[booking.ID] = &stored
	return nil
}

func (l *MemoryLedger) MarkInventoryReserved(_ context.Context, id models.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored, ok := l.bookings[id]
	if !ok {
		return errors.Errorf("booking %s not found", id)
	}
	stored.InventoryReserved = true
	return nil
}

func (l *MemoryLedger) GetPaymentForBooking(_ context.Context, bookingID models.ID) (*domain.Payment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	payment, ok := l.payments[bookingID]
	if !ok {
		return nil, nil
	}

	p := *payment
	return &p, nil
}

func (l *MemoryLedger) ListBookingsForUser(_ context.Context, userID models.ID) ([]*domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var bookings []*domain.Booking
	for _, b := range l.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b.Clone())
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Timestamps.CreatedAt.Equal(bookings[j].Timestamps.CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].Timestamps.CreatedAt.After(bookings[j].Timestamps.CreatedAt)
	})

	return bookings, nil
}

// store writes a status change. The reservation flag is only ever set by
// MarkInventoryReserved, as in Postgres. Must be called with the write lock held.
func (l *MemoryLedger) store(booking *domain.Booking) {
	c := booking.Clone()
	c.InventoryReserved = l.bookings[booking.ID].InventoryReserved
	l.bookings[booking.ID] = c
}

// checkVersion must be called with the write lock held
func (l *MemoryLedger) checkVersion(booking *domain.Booking) error {
	stored, ok := l.bookings[booking.ID]
	if !ok {
		return errors.Errorf("booking %s not found", booking.ID)
	}
	if stored.Version.Value != booking.Version.Previous() {
		return domain.ErrConcurrentModification
	}
	return nil
}
