package handlers

import (
	"context"
	"testing"

	"github.com/draftea/booking-system/notification-service/application"
	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/draftea/booking-system/notification-service/mocks"
	"github.com/draftea/booking-system/shared/events"
	"github.com/draftea/booking-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmedPayload() domain.BookingPayload {
	return domain.BookingPayload{
		BookingID:  "b-1",
		UserID:     "42",
		UserEmail:  "user42@example.com",
		EventID:    "E1",
		EventName:  "Jazz Night",
		Tickets:    2,
		TotalPrice: 100,
		Status:     domain.StatusConfirmed,
	}
}

// wireEvent round-trips an event through the wire codec so its payload arrives as raw JSON
func wireEvent(t *testing.T, topic events.Topic, payload interface{}) *events.Event {
	t.Helper()

	raw, err := events.Encode(events.NewEvent(models.ID("b-1"), topic, payload))
	require.NoError(t, err)
	event, err := events.Decode(raw)
	require.NoError(t, err)
	return event
}

func TestNotificationEventHandlers_Handle(t *testing.T) {
	tests := []struct {
		name          string
		event         func(t *testing.T) *events.Event
		setupMocks    func(*mocks.MockNotificationStore, *mocks.MockSender)
		expectedError string
	}{
		{
			name: "confirmed booking is recorded and sent",
			event: func(t *testing.T) *events.Event {
				return wireEvent(t, events.BookingConfirmedTopic, confirmedPayload())
			},
			setupMocks: func(store *mocks.MockNotificationStore, sender *mocks.MockSender) {
				store.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
					return n.BookingID == "b-1" && n.Tickets == 2
				})).Return(nil).Once()
				sender.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
				store.EXPECT().MarkSent(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "in-process payload struct",
			event: func(*testing.T) *events.Event {
				p := confirmedPayload()
				p.Status = domain.StatusPending
				return events.NewEvent(models.ID("b-1"), events.BookingPendingTopic, p)
			},
			setupMocks: func(store *mocks.MockNotificationStore, sender *mocks.MockSender) {
				store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "topic outside booking is ignored",
			event: func(t *testing.T) *events.Event {
				return wireEvent(t, events.Topic("payment.completed"), confirmedPayload())
			},
			setupMocks: func(*mocks.MockNotificationStore, *mocks.MockSender) {},
		},
		{
			name: "undecodable payload is dropped",
			event: func(t *testing.T) *events.Event {
				return wireEvent(t, events.BookingConfirmedTopic, []string{"not", "a", "booking"})
			},
			setupMocks: func(*mocks.MockNotificationStore, *mocks.MockSender) {},
		},
		{
			name: "invalid notification is dropped",
			event: func(t *testing.T) *events.Event {
				p := confirmedPayload()
				p.UserEmail = ""
				return wireEvent(t, events.BookingConfirmedTopic, p)
			},
			setupMocks: func(*mocks.MockNotificationStore, *mocks.MockSender) {},
		},
		{
			name: "store failure is returned for redelivery",
			event: func(t *testing.T) *events.Event {
				return wireEvent(t, events.BookingCancelledTopic, confirmedPayload())
			},
			setupMocks: func(store *mocks.MockNotificationStore, sender *mocks.MockSender) {
				store.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("no primary")).Once()
			},
			expectedError: "failed to store notification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockNotificationStore(t)
			sender := mocks.NewMockSender(t)
			tt.setupMocks(store, sender)

			h := NewNotificationEventHandlers(application.NewRecordNotification(store, sender))
			err := h.Handle(context.Background(), tt.event(t))

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotificationEventHandlers_UsesEventIDAsKey(t *testing.T) {
	store := mocks.NewMockNotificationStore(t)
	sender := mocks.NewMockSender(t)
	event := wireEvent(t, events.BookingConfirmedTopic, confirmedPayload())

	store.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.ID == event.ID.String()
	})).Return(domain.ErrDuplicateNotification).Once()

	h := NewNotificationEventHandlers(application.NewRecordNotification(store, sender))
	assert.NoError(t, h.Handle(context.Background(), event))
}
