package application

import (
	"context"
	"testing"
	"time"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/booking-service/mocks"
	"github.com/draftea/booking-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID    = models.ID("42")
	testEventID   = models.ID("evt-1")
	testBookingID = models.ID("b-1")
)

var testEvent = &domain.EventInfo{
	ID:               testEventID,
	Name:             "Summer Concert",
	UnitPrice:        models.NewMoney(5000, "USD"),
	AvailableTickets: 10,
}

type staticUsers struct{}

func (staticUsers) EmailFor(_ context.Context, userID models.ID) string {
	return "user" + userID.String() + "@example.com"
}

type sagaMocks struct {
	ledger       *mocks.MockLedgerStore
	availability *mocks.MockAvailabilityClient
	payments     *mocks.MockPaymentClient
	notifier     *mocks.MockNotifier
}

func newSagaMocks(t *testing.T) *sagaMocks {
	return &sagaMocks{
		ledger:       mocks.NewMockLedgerStore(t),
		availability: mocks.NewMockAvailabilityClient(t),
		payments:     mocks.NewMockPaymentClient(t),
		notifier:     mocks.NewMockNotifier(t),
	}
}

func (m *sagaMocks) saga(opts ...Option) *BookingSaga {
	return NewBookingSaga(m.ledger, m.availability, m.payments, m.notifier, staticUsers{}, opts...)
}

func (m *sagaMocks) expectOpen() {
	m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
	m.availability.EXPECT().CheckAvailability(mock.Anything, testEventID, 2).Return(true, nil).Once()
	m.ledger.EXPECT().CreateBooking(mock.Anything, mock.AnythingOfType("*domain.Booking")).
		RunAndReturn(func(_ context.Context, b *domain.Booking) error {
			b.ID = testBookingID
			return nil
		}).Once()
	m.expectNotify(domain.BookingStatusPending, nil)
}

func (m *sagaMocks) expectNotify(status domain.BookingStatus, err error) {
	m.notifier.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(n domain.BookingNotification) bool {
		return n.Status == status
	})).Return(err).Once()
}

func (m *sagaMocks) expectCharge(result *domain.ChargeResult, err error) {
	m.payments.EXPECT().Charge(mock.Anything, models.NewMoney(10000, "USD"), testUserID).Return(result, err).Once()
}

func bookingIn(status domain.BookingStatus) *domain.Booking {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:          testBookingID,
		UserID:      testUserID,
		EventID:     testEventID,
		TicketCount: 2,
		TotalPrice:  models.NewMoney(10000, "USD"),
		Status:      status,
		Timestamps:  models.Timestamps{CreatedAt: created, UpdatedAt: created},
		Version:     models.Version{Value: 3},
	}
}

func validCommand() *CreateBookingCommand {
	return &CreateBookingCommand{UserID: testUserID.String(), EventID: testEventID.String(), Tickets: 2}
}

func approved() *domain.ChargeResult {
	return &domain.ChargeResult{Success: true, TransactionID: "TXN-42-1700000000"}
}

func TestBookingSaga_CreateAndConfirm(t *testing.T) {
	tests := []struct {
		name           string
		cmd            *CreateBookingCommand
		setupMocks     func(*sagaMocks)
		expectedKind   domain.ErrorKind
		expectedStatus domain.BookingStatus
		expectPayment  bool
		failedSteps    []domain.SideEffectStep
	}{
		{
			name: "books, charges and confirms",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.expectOpen()
				m.expectCharge(approved(), nil)
				m.ledger.EXPECT().ConfirmBooking(mock.Anything,
					mock.MatchedBy(func(b *domain.Booking) bool { return b.Status == domain.BookingStatusConfirmed }),
					mock.MatchedBy(func(p *domain.Payment) bool {
						return p.BookingID == testBookingID && p.Amount.Amount == 10000 && p.TransactionID == "TXN-42-1700000000"
					}),
				).Return(nil).Once()
				m.availability.EXPECT().Reserve(mock.Anything, testEventID, 2).Return(nil).Once()
				m.ledger.EXPECT().MarkInventoryReserved(mock.Anything, testBookingID).Return(nil).Once()
				m.expectNotify(domain.BookingStatusConfirmed, nil)
			},
			expectedStatus: domain.BookingStatusConfirmed,
			expectPayment:  true,
		},
		{
			name:         "rejects zero tickets before any call",
			cmd:          &CreateBookingCommand{UserID: "42", EventID: "evt-1", Tickets: 0},
			setupMocks:   func(m *sagaMocks) {},
			expectedKind: domain.KindValidation,
		},
		{
			name:         "rejects missing user",
			cmd:          &CreateBookingCommand{UserID: "  ", EventID: "evt-1", Tickets: 1},
			setupMocks:   func(m *sagaMocks) {},
			expectedKind: domain.KindValidation,
		},
		{
			name: "unknown event",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(nil, nil).Once()
			},
			expectedKind: domain.KindNotFound,
		},
		{
			name: "event service unreachable",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(nil, errors.New("connection refused")).Once()
			},
			expectedKind: domain.KindUpstreamFailure,
		},
		{
			name: "not enough tickets leaves no booking",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.availability.EXPECT().CheckAvailability(mock.Anything, testEventID, 2).Return(false, nil).Once()
			},
			expectedKind: domain.KindCapacity,
		},
		{
			name: "ledger unavailable on create",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.availability.EXPECT().CheckAvailability(mock.Anything, testEventID, 2).Return(true, nil).Once()
				m.ledger.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			expectedKind: domain.KindUpstreamFailure,
		},
		{
			name: "declined charge records PAYMENT_FAILED",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.expectOpen()
				m.expectCharge(&domain.ChargeResult{Success: false, DeclineReason: "insufficient funds"}, nil)
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything,
					mock.MatchedBy(func(b *domain.Booking) bool { return b.Status == domain.BookingStatusPaymentFailed }),
				).Return(nil).Once()
			},
			expectedKind:   domain.KindPaymentDeclined,
			expectedStatus: domain.BookingStatusPaymentFailed,
		},
		{
			name: "processor unreachable leaves booking pending",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.expectOpen()
				m.expectCharge(nil, errors.New("timeout"))
			},
			expectedKind:   domain.KindUpstreamFailure,
			expectedStatus: domain.BookingStatusPending,
		},
		{
			name: "processor returning nothing is an upstream failure",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.expectOpen()
				m.expectCharge(nil, nil)
			},
			expectedKind:   domain.KindUpstreamFailure,
			expectedStatus: domain.BookingStatusPending,
		},
		{
			name: "decrement not recorded on booking is reported",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.expectOpen()
				m.expectCharge(approved(), nil)
				m.ledger.EXPECT().ConfirmBooking(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().Reserve(mock.Anything, testEventID, 2).Return(nil).Once()
				m.ledger.EXPECT().MarkInventoryReserved(mock.Anything, testBookingID).Return(errors.New("db down")).Once()
				m.expectNotify(domain.BookingStatusConfirmed, nil)
			},
			expectedStatus: domain.BookingStatusConfirmed,
			expectPayment:  true,
			failedSteps:    []domain.SideEffectStep{domain.StepInventoryRecord},
		},
		{
			name: "decrement failure after payment keeps booking confirmed",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.expectOpen()
				m.expectCharge(approved(), nil)
				m.ledger.EXPECT().ConfirmBooking(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().Reserve(mock.Anything, testEventID, 2).Return(errors.New("sold out")).Once()
				m.expectNotify(domain.BookingStatusConfirmed, nil)
			},
			expectedStatus: domain.BookingStatusConfirmed,
			expectPayment:  true,
			failedSteps:    []domain.SideEffectStep{domain.StepInventoryReserve},
		},
		{
			name: "notification failures never fail the booking",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.availability.EXPECT().CheckAvailability(mock.Anything, testEventID, 2).Return(true, nil).Once()
				m.ledger.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil).Once()
				m.expectNotify(domain.BookingStatusPending, errors.New("broker down"))
				m.expectCharge(approved(), nil)
				m.ledger.EXPECT().ConfirmBooking(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().Reserve(mock.Anything, testEventID, 2).Return(nil).Once()
				m.ledger.EXPECT().MarkInventoryReserved(mock.Anything, mock.Anything).Return(nil).Once()
				m.expectNotify(domain.BookingStatusConfirmed, errors.New("broker down"))
			},
			expectedStatus: domain.BookingStatusConfirmed,
			expectPayment:  true,
			failedSteps:    []domain.SideEffectStep{domain.StepNotify, domain.StepNotify},
		},
		{
			name: "concurrent writer wins the confirmation",
			cmd:  validCommand(),
			setupMocks: func(m *sagaMocks) {
				m.expectOpen()
				m.expectCharge(approved(), nil)
				m.ledger.EXPECT().ConfirmBooking(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ErrConcurrentModification).Once()
			},
			expectedKind: domain.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSagaMocks(t)
			tt.setupMocks(m)

			result, err := m.saga().CreateAndConfirm(context.Background(), tt.cmd)

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, domain.KindOf(err))
			} else {
				require.NoError(t, err)
			}

			if tt.expectedStatus == "" {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, tt.expectedStatus, result.Booking.Status)
			assert.Equal(t, int64(10000), result.Booking.TotalPrice.Amount)
			if tt.expectPayment {
				require.NotNil(t, result.Payment)
				assert.Equal(t, result.Booking.TotalPrice, result.Payment.Amount)
				assert.Equal(t, domain.PaymentMethodCreditCard, result.Payment.PaymentMethod)
			} else {
				assert.Nil(t, result.Payment)
			}

			var failed []domain.SideEffectStep
			for _, o := range result.SideEffects.Failed() {
				failed = append(failed, o.Step)
			}
			assert.Equal(t, tt.failedSteps, failed)
		})
	}
}

func TestBookingSaga_CreatePending(t *testing.T) {
	m := newSagaMocks(t)
	m.expectOpen()

	result, err := m.saga().CreatePending(context.Background(), validCommand())

	require.NoError(t, err)
	assert.Equal(t, testBookingID, result.Booking.ID)
	assert.Equal(t, domain.BookingStatusPending, result.Booking.Status)
	assert.Equal(t, 1, result.Booking.Version.Value)
	assert.Nil(t, result.Payment)
	assert.Empty(t, result.SideEffects.Failed())
}

func TestBookingSaga_Confirm(t *testing.T) {
	tests := []struct {
		name           string
		bookingID      string
		setupMocks     func(*sagaMocks)
		expectedKind   domain.ErrorKind
		expectedStatus domain.BookingStatus
	}{
		{
			name:      "confirms a pending booking",
			bookingID: testBookingID.String(),
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(bookingIn(domain.BookingStatusPending), nil).Once()
				m.expectCharge(approved(), nil)
				m.ledger.EXPECT().ConfirmBooking(mock.Anything,
					mock.MatchedBy(func(b *domain.Booking) bool {
						return b.Status == domain.BookingStatusConfirmed && b.Version.Value == 4
					}),
					mock.Anything,
				).Return(nil).Once()
				m.availability.EXPECT().Reserve(mock.Anything, testEventID, 2).Return(nil).Once()
				m.ledger.EXPECT().MarkInventoryReserved(mock.Anything, testBookingID).Return(nil).Once()
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.notifier.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(n domain.BookingNotification) bool {
					return n.Status == domain.BookingStatusConfirmed && n.EventName == "Summer Concert" && n.UserEmail == "user42@example.com"
				})).Return(nil).Once()
			},
			expectedStatus: domain.BookingStatusConfirmed,
		},
		{
			name:         "empty ID",
			bookingID:    " ",
			setupMocks:   func(m *sagaMocks) {},
			expectedKind: domain.KindValidation,
		},
		{
			name:      "unknown booking",
			bookingID: testBookingID.String(),
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(nil, nil).Once()
			},
			expectedKind: domain.KindNotFound,
		},
		{
			name:      "already confirmed is not charged again",
			bookingID: testBookingID.String(),
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(bookingIn(domain.BookingStatusConfirmed), nil).Once()
			},
			expectedKind: domain.KindConflict,
		},
		{
			name:      "cancelled booking cannot be confirmed",
			bookingID: testBookingID.String(),
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(bookingIn(domain.BookingStatusCancelled), nil).Once()
			},
			expectedKind: domain.KindConflict,
		},
		{
			name:      "payment failed booking cannot be retried",
			bookingID: testBookingID.String(),
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(bookingIn(domain.BookingStatusPaymentFailed), nil).Once()
			},
			expectedKind: domain.KindConflict,
		},
		{
			name:      "event lookup failure still notifies",
			bookingID: testBookingID.String(),
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(bookingIn(domain.BookingStatusPending), nil).Once()
				m.expectCharge(approved(), nil)
				m.ledger.EXPECT().ConfirmBooking(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().Reserve(mock.Anything, testEventID, 2).Return(nil).Once()
				m.ledger.EXPECT().MarkInventoryReserved(mock.Anything, testBookingID).Return(nil).Once()
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(nil, errors.New("timeout")).Once()
				m.notifier.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(n domain.BookingNotification) bool {
					return n.EventName == domain.UnknownEventName
				})).Return(nil).Once()
			},
			expectedStatus: domain.BookingStatusConfirmed,
		},
		{
			name:      "declined",
			bookingID: testBookingID.String(),
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(bookingIn(domain.BookingStatusPending), nil).Once()
				m.expectCharge(&domain.ChargeResult{Success: false}, nil)
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedKind:   domain.KindPaymentDeclined,
			expectedStatus: domain.BookingStatusPaymentFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSagaMocks(t)
			tt.setupMocks(m)

			result, err := m.saga().Confirm(context.Background(), tt.bookingID)

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, domain.KindOf(err))
			} else {
				require.NoError(t, err)
			}

			if tt.expectedStatus == "" {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expectedStatus, result.Booking.Status)
		})
	}
}

func TestBookingSaga_Confirm_LockHeld(t *testing.T) {
	m := newSagaMocks(t)
	locker := lockerFunc(func(context.Context, models.ID) (func(), error) {
		return nil, domain.ErrBookingLocked
	})

	result, err := m.saga(WithLocker(locker)).Confirm(context.Background(), testBookingID.String())

	assert.Nil(t, result)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.ErrorIs(t, err, domain.ErrBookingLocked)
}

type lockerFunc func(context.Context, models.ID) (func(), error)

func (f lockerFunc) Acquire(ctx context.Context, id models.ID) (func(), error) {
	return f(ctx, id)
}

func TestBookingSaga_Cancel(t *testing.T) {
	tests := []struct {
		name          string
		stored        domain.BookingStatus
		reserved      bool
		setupMocks    func(*sagaMocks)
		expectedKind  domain.ErrorKind
		expectRelease bool
		failedSteps   []domain.SideEffectStep
	}{
		{
			name:     "confirmed booking releases its tickets",
			stored:   domain.BookingStatusConfirmed,
			reserved: true,
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything,
					mock.MatchedBy(func(b *domain.Booking) bool { return b.Status == domain.BookingStatusCancelled }),
				).Return(nil).Once()
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.availability.EXPECT().Release(mock.Anything, testEventID, 2).Return(nil).Once()
				m.expectNotify(domain.BookingStatusCancelled, nil)
			},
			expectRelease: true,
		},
		{
			name:   "confirmed booking whose decrement failed releases nothing",
			stored: domain.BookingStatusConfirmed,
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.expectNotify(domain.BookingStatusCancelled, nil)
			},
		},
		{
			name:   "pending booking held no tickets",
			stored: domain.BookingStatusPending,
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.expectNotify(domain.BookingStatusCancelled, nil)
			},
		},
		{
			name:   "payment failed booking can be cancelled",
			stored: domain.BookingStatusPaymentFailed,
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(testEvent, nil).Once()
				m.expectNotify(domain.BookingStatusCancelled, nil)
			},
		},
		{
			name:         "already cancelled",
			stored:       domain.BookingStatusCancelled,
			setupMocks:   func(m *sagaMocks) {},
			expectedKind: domain.KindConflict,
		},
		{
			name:     "release and notify failures are swallowed",
			stored:   domain.BookingStatusConfirmed,
			reserved: true,
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything, mock.Anything).Return(nil).Once()
				m.availability.EXPECT().GetEvent(mock.Anything, testEventID).Return(nil, errors.New("timeout")).Once()
				m.availability.EXPECT().Release(mock.Anything, testEventID, 2).Return(errors.New("timeout")).Once()
				m.expectNotify(domain.BookingStatusCancelled, errors.New("broker down"))
			},
			expectRelease: true,
			failedSteps:   []domain.SideEffectStep{domain.StepEventLookup, domain.StepInventoryRelease, domain.StepNotify},
		},
		{
			name:   "concurrent modification",
			stored: domain.BookingStatusPending,
			setupMocks: func(m *sagaMocks) {
				m.ledger.EXPECT().UpdateBookingStatus(mock.Anything, mock.Anything).Return(domain.ErrConcurrentModification).Once()
			},
			expectedKind: domain.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSagaMocks(t)
			stored := bookingIn(tt.stored)
			stored.InventoryReserved = tt.reserved
			m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(stored, nil).Once()
			tt.setupMocks(m)

			result, err := m.saga().Cancel(context.Background(), testBookingID.String())

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, domain.KindOf(err))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatusCancelled, result.Booking.Status)

			_, released := result.SideEffects.Find(domain.StepInventoryRelease)
			assert.Equal(t, tt.expectRelease, released)

			var failed []domain.SideEffectStep
			for _, o := range result.SideEffects.Failed() {
				failed = append(failed, o.Step)
			}
			assert.Equal(t, tt.failedSteps, failed)
		})
	}
}

func TestBookingSaga_Get(t *testing.T) {
	payment := &domain.Payment{ID: "p-1", BookingID: testBookingID, Amount: models.NewMoney(10000, "USD")}

	t.Run("returns booking with payment", func(t *testing.T) {
		m := newSagaMocks(t)
		m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(bookingIn(domain.BookingStatusConfirmed), nil).Once()
		m.ledger.EXPECT().GetPaymentForBooking(mock.Anything, testBookingID).Return(payment, nil).Once()

		result, err := m.saga().Get(context.Background(), testBookingID.String())

		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, result.Booking.Status)
		assert.Equal(t, payment, result.Payment)
	})

	t.Run("not found", func(t *testing.T) {
		m := newSagaMocks(t)
		m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(nil, nil).Once()

		_, err := m.saga().Get(context.Background(), testBookingID.String())

		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("ledger failure", func(t *testing.T) {
		m := newSagaMocks(t)
		m.ledger.EXPECT().GetBooking(mock.Anything, testBookingID).Return(nil, errors.New("db down")).Once()

		_, err := m.saga().Get(context.Background(), testBookingID.String())

		assert.True(t, domain.IsKind(err, domain.KindUpstreamFailure))
	})
}

func TestBookingSaga_GetForUser(t *testing.T) {
	t.Run("lists bookings with payments", func(t *testing.T) {
		m := newSagaMocks(t)
		confirmed := bookingIn(domain.BookingStatusConfirmed)
		pending := bookingIn(domain.BookingStatusPending)
		pending.ID = "b-2"

		m.ledger.EXPECT().ListBookingsForUser(mock.Anything, testUserID).Return([]*domain.Booking{pending, confirmed}, nil).Once()
		m.ledger.EXPECT().GetPaymentForBooking(mock.Anything, models.ID("b-2")).Return(nil, nil).Once()
		m.ledger.EXPECT().GetPaymentForBooking(mock.Anything, testBookingID).Return(&domain.Payment{ID: "p-1"}, nil).Once()

		results, err := m.saga().GetForUser(context.Background(), testUserID.String())

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Nil(t, results[0].Payment)
		assert.Equal(t, models.ID("p-1"), results[1].Payment.ID)
	})

	t.Run("no bookings", func(t *testing.T) {
		m := newSagaMocks(t)
		m.ledger.EXPECT().ListBookingsForUser(mock.Anything, testUserID).Return(nil, nil).Once()

		results, err := m.saga().GetForUser(context.Background(), testUserID.String())

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty user", func(t *testing.T) {
		m := newSagaMocks(t)

		_, err := m.saga().GetForUser(context.Background(), "")

		assert.True(t, domain.IsKind(err, domain.KindValidation))
	})
}
