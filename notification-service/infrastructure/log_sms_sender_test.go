package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/draftea/booking-system/notification-service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRenderSMS(t *testing.T) {
	n := testNotification()

	text, err := renderSMS(n)
	require.NoError(t, err)
	assert.Equal(t, "Your booking #b-1 for Jazz Night has been confirmed.\nTickets: 2, Total: $100.00", text)

	n.Status = domain.StatusCancelled
	n.EventName = ""
	text, err = renderSMS(n)
	require.NoError(t, err)
	assert.Equal(t, "Your booking #b-1 for your event has been cancelled.", text)

	n.Status = domain.StatusPending
	_, err = renderSMS(n)
	assert.Error(t, err)
}

func TestLogSMSSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSMSSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	n := testNotification()
	n.Type = domain.NotificationTypeSMS
	require.NoError(t, sender.Send(context.Background(), n))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "sending sms notification", record["msg"])
	assert.Equal(t, "42", record["user_id"])
}

func TestChannelSender_Send(t *testing.T) {
	tests := []struct {
		name          string
		notifType     domain.NotificationType
		setupMocks    func(email, sms *mocks.MockSender)
		expectedError string
	}{
		{
			name:      "email",
			notifType: domain.NotificationTypeEmail,
			setupMocks: func(email, sms *mocks.MockSender) {
				email.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:      "sms",
			notifType: domain.NotificationTypeSMS,
			setupMocks: func(email, sms *mocks.MockSender) {
				sms.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("gateway down")).Once()
			},
			expectedError: "gateway down",
		},
		{
			name:          "unknown type",
			notifType:     "PIGEON",
			setupMocks:    func(email, sms *mocks.MockSender) {},
			expectedError: `no sender for notification type "PIGEON"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := mocks.NewMockSender(t)
			sms := mocks.NewMockSender(t)
			tt.setupMocks(email, sms)

			n := testNotification()
			n.Type = tt.notifType

			err := NewChannelSender(email, sms).Send(context.Background(), n)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
