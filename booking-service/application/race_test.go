package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/booking-service/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rendezvous blocks each caller until n callers have arrived
func rendezvous(n int) func() {
	var wg sync.WaitGroup
	wg.Add(n)
	return func() {
		wg.Done()
		wg.Wait()
	}
}

func runConcurrently(n int, fn func(i int)) {
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(i)
		}()
	}
	wg.Wait()
}

func TestRace_LastTicketsOversold(t *testing.T) {
	f := newSagaFixture(2)
	f.inventory.checkHook = rendezvous(2)

	results := make([]*BookingResult, 2)
	errs := make([]error, 2)
	runConcurrently(2, func(i int) {
		results[i], errs[i] = f.saga.CreateAndConfirm(context.Background(), bookCommand(2))
	})

	// Both requests saw two tickets left, both paid and both are confirmed
	for i := range 2 {
		require.NoError(t, errs[i])
		assert.Equal(t, domain.BookingStatusConfirmed, results[i].Booking.Status)
	}
	assert.Equal(t, 2, f.processor.chargeCount())
	assert.Equal(t, 2, f.inventory.reserves)
	assert.Equal(t, 0, f.inventory.available("E1"))

	// Only the second decrement noticed the oversell
	var reserveFailures int
	for _, r := range results {
		if o, ok := r.SideEffects.Find(domain.StepInventoryReserve); ok && o.Failed() {
			reserveFailures++
		}
	}
	assert.Equal(t, 1, reserveFailures)
}

func TestRace_CancellingOversoldBookingsReturnsOnlyTakenTickets(t *testing.T) {
	f := newSagaFixture(2)
	f.inventory.checkHook = rendezvous(2)

	results := make([]*BookingResult, 2)
	errs := make([]error, 2)
	runConcurrently(2, func(i int) {
		results[i], errs[i] = f.saga.CreateAndConfirm(context.Background(), bookCommand(2))
	})
	f.inventory.checkHook = nil

	var reserved int
	for i, r := range results {
		require.NoError(t, errs[i])
		if r.Booking.InventoryReserved {
			reserved++
		}
	}
	assert.Equal(t, 1, reserved)

	for _, r := range results {
		cancelled, err := f.saga.Cancel(context.Background(), r.Booking.ID.String())
		require.NoError(t, err)
		assert.False(t, cancelled.Booking.HoldsInventory())
	}

	assert.Equal(t, 1, f.inventory.releases)
	assert.Equal(t, 2, f.inventory.available("E1"))
}

func TestRace_ConcurrentConfirmChargesTwice(t *testing.T) {
	f := newSagaFixture(10)

	pending, err := f.saga.CreatePending(context.Background(), bookCommand(2))
	require.NoError(t, err)

	f.processor.chargeHook = rendezvous(2)

	errs := make([]error, 2)
	runConcurrently(2, func(i int) {
		_, errs[i] = f.saga.Confirm(context.Background(), pending.Booking.ID.String())
	})

	// Both read PENDING and both were charged; the version check lets only one persist
	assert.Equal(t, 2, f.processor.chargeCount())

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case domain.IsKind(err, domain.KindConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	stored, err := f.saga.Get(context.Background(), pending.Booking.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, stored.Booking.Status)
	require.NotNil(t, stored.Payment)
	assert.Equal(t, 8, f.inventory.available("E1"))
}

func TestRace_BookingLockPreventsDoubleCharge(t *testing.T) {
	f := newSagaFixture(10, WithLocker(infrastructure.NewMemoryBookingLocker()))

	pending, err := f.saga.CreatePending(context.Background(), bookCommand(2))
	require.NoError(t, err)

	entered := make(chan struct{})
	proceed := make(chan struct{})
	f.processor.chargeHook = func() {
		close(entered)
		<-proceed
	}

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.saga.Confirm(context.Background(), pending.Booking.ID.String())
		firstDone <- err
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first confirm never reached the processor")
	}

	_, err = f.saga.Confirm(context.Background(), pending.Booking.ID.String())
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.ErrorIs(t, err, domain.ErrBookingLocked)

	close(proceed)
	require.NoError(t, <-firstDone)

	assert.Equal(t, 1, f.processor.chargeCount())

	// The lock is released once the first confirm returns
	_, err = f.saga.Confirm(context.Background(), pending.Booking.ID.String())
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.NotErrorIs(t, err, domain.ErrBookingLocked)
}
