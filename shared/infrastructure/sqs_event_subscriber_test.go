package infrastructure

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/draftea/booking-system/shared/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSQS hands out its pending messages on the first receive and records how each was settled
type fakeSQS struct {
	mu         sync.Mutex
	pending    []types.Message
	deleted    []string
	visibility map[string]int32
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	msgs := f.pending
	f.pending = nil
	return &sqs.ReceiveMessageOutput{Messages: msgs}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) ChangeMessageVisibility(_ context.Context, params *sqs.ChangeMessageVisibilityInput, _ ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.visibility == nil {
		f.visibility = make(map[string]int32)
	}
	f.visibility[aws.ToString(params.ReceiptHandle)] = params.VisibilityTimeout
	return &sqs.ChangeMessageVisibilityOutput{}, nil
}

func (f *fakeSQS) settled() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deleted) + len(f.visibility)
}

type recordingHandler struct {
	mu      sync.Mutex
	handled []*events.Event
	failFor string
}

func (h *recordingHandler) Handle(_ context.Context, event *events.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.handled = append(h.handled, event)
	if event.AggregateID.String() == h.failFor {
		return errors.New("store unavailable")
	}
	return nil
}

func sqsMessageFor(t *testing.T, event *events.Event, receipt string, receiveCount string, viaSNS bool) types.Message {
	body, err := events.Encode(event)
	require.NoError(t, err)

	if viaSNS {
		body, err = json.Marshal(map[string]string{"Type": "Notification", "Message": string(body)})
		require.NoError(t, err)
	}

	return types.Message{
		MessageId:     aws.String("msg-" + receipt),
		ReceiptHandle: aws.String(receipt),
		Body:          aws.String(string(body)),
		Attributes: map[string]string{
			string(types.MessageSystemAttributeNameApproximateReceiveCount): receiveCount,
		},
	}
}

func TestSQSEventSubscriber(t *testing.T) {
	ok := testEvent("1")
	failing := testEvent("2")

	client := &fakeSQS{pending: []types.Message{
		sqsMessageFor(t, ok, "r-ok", "1", true),
		sqsMessageFor(t, failing, "r-fail", "7", false),
		{MessageId: aws.String("msg-bad"), ReceiptHandle: aws.String("r-bad"), Body: aws.String("not json")},
	}}
	handler := &recordingHandler{failFor: "b-2"}

	subscriber := NewSQSEventSubscriber(client, "http://localhost:4566/000000000000/booking-notifications", handler,
		WithWorkers(2),
		WithReaders(1),
		WithWaitTime(0),
		WithSleepTimes(10*time.Millisecond, 10*time.Millisecond),
	)

	require.NoError(t, subscriber.Start(context.Background()))
	require.Eventually(t, func() bool { return client.settled() == 2 }, 5*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, subscriber.Stop(ctx))
	require.NoError(t, subscriber.Stop(ctx))

	assert.Equal(t, []string{"r-ok"}, client.deleted)
	// receive count 7 with the default range of 3 adds two offsets of 30s
	assert.Equal(t, map[string]int32{"r-fail": 90}, client.visibility)

	require.Len(t, handler.handled, 2)
	for _, e := range handler.handled {
		receipt, _ := e.Metadata.Get(SQSReceiptHandleKey)
		assert.NotEmpty(t, receipt)
		source, _ := e.Metadata.Get("source")
		assert.Equal(t, "booking-service", source)
	}
}

func TestSQSEventSubscriber_RequiresHandler(t *testing.T) {
	subscriber := NewSQSEventSubscriber(&fakeSQS{}, "queue", nil)

	assert.Error(t, subscriber.Start(context.Background()))
}

func TestDecodeSQSBody(t *testing.T) {
	event := testEvent("1")
	raw, err := events.Encode(event)
	require.NoError(t, err)

	direct, err := decodeSQSBody(string(raw))
	require.NoError(t, err)
	assert.Equal(t, event.ID, direct.ID)

	wrapped, _ := json.Marshal(map[string]string{"Type": "Notification", "Message": string(raw)})
	viaSNS, err := decodeSQSBody(string(wrapped))
	require.NoError(t, err)
	assert.Equal(t, event.Topic, viaSNS.Topic)

	_, err = decodeSQSBody(`{"id":"x"}`)
	assert.ErrorIs(t, err, events.ErrInvalidTopic)
}

func TestSQSEventSubscriber_Backoff(t *testing.T) {
	s := NewSQSEventSubscriber(&fakeSQS{}, "queue", &recordingHandler{})

	tests := []struct {
		receiveCount string
		expected     int32
	}{
		{"", 30},
		{"1", 30},
		{"3", 60},
		{"10", 120},
		{"1000", 900},
	}

	for _, tt := range tests {
		msg := types.Message{Attributes: map[string]string{
			string(types.MessageSystemAttributeNameApproximateReceiveCount): tt.receiveCount,
		}}
		assert.Equal(t, tt.expected, s.backoff(msg), "receive count %q", tt.receiveCount)
	}
}
