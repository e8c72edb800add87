package infrastructure

import (
	"context"
	"log/slog"

	"github.com/draftea/booking-system/shared/events"
	"github.com/pkg/errors"
)

var _ events.Publisher = (*LogPublisher)(nil)

// LogPublisher writes events to the log instead of a broker, for local runs
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	for _, event := range evts {
		body, err := events.Encode(event)
		if err != nil {
			return errors.Wrap(err, "failed to encode event")
		}

		p.log.InfoContext(ctx, "event published",
			"event_id", event.ID,
			"topic", event.Topic,
			"aggregate_id", event.AggregateID,
			"message", string(body),
		)
	}
	return nil
}
