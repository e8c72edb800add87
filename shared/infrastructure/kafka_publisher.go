package infrastructure

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/draftea/booking-system/shared/events"
	"github.com/pkg/errors"
)

var _ events.Publisher = (*KafkaPublisher)(nil)

// KafkaPublisher writes events to one Kafka topic, keyed by aggregate ID so
// every notification for a booking lands on the same partition
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a synchronous producer that waits for all replicas
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	return NewKafkaPublisherWithProducer(producer, topic), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(evts))
	for _, event := range evts {
		body, err := events.Encode(event)
		if err != nil {
			return errors.Wrap(err, "failed to encode event")
		}

		headers := []sarama.RecordHeader{
			{Key: []byte("topic"), Value: []byte(event.Topic.String())},
		}
		for k, v := range event.Metadata {
			if !isTransportKey(k) {
				headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
			}
		}

		msgs = append(msgs, &sarama.ProducerMessage{
			Topic:     p.topic,
			Key:       sarama.StringEncoder(event.AggregateID.String()),
			Value:     sarama.ByteEncoder(body),
			Headers:   headers,
			Timestamp: event.Timestamp,
		})
	}

	if len(msgs) == 1 {
		if _, _, err := p.producer.SendMessage(msgs[0]); err != nil {
			return errors.Wrap(err, "failed to send message to kafka")
		}
		return nil
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		return errors.Wrap(err, "failed to send messages to kafka")
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
