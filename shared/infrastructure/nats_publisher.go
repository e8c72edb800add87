package infrastructure

import (
	"context"
	"time"

	"github.com/draftea/booking-system/shared/events"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

var _ events.Publisher = (*NATSPublisher)(nil)

const defaultNATSFlushTimeout = 5 * time.Second

// natsConn is the part of *nats.Conn the publisher uses
type natsConn interface {
	PublishMsg(msg *nats.Msg) error
	FlushWithContext(ctx context.Context) error
}

// NATSPublisher publishes each event on subject <prefix>.<topic>
type NATSPublisher struct {
	nc            natsConn
	close         func()
	subjectPrefix string
}

func NewNATSPublisher(url, clientName, subjectPrefix string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name(clientName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to NATS")
	}

	return &NATSPublisher{nc: nc, close: nc.Close, subjectPrefix: subjectPrefix}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	for _, event := range evts {
		body, err := events.Encode(event)
		if err != nil {
			return errors.Wrap(err, "failed to encode event")
		}

		msg := nats.NewMsg(p.subject(event.Topic))
		msg.Data = body
		msg.Header.Set(nats.MsgIdHdr, event.ID.String())
		for k, v := range event.Metadata {
			if !isTransportKey(k) {
				msg.Header.Set(k, v)
			}
		}

		if err := p.nc.PublishMsg(msg); err != nil {
			return errors.Wrapf(err, "failed to publish to subject %s", msg.Subject)
		}
	}

	// Flush so a failed connection is reported here rather than lost.
	// FlushWithContext requires a deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultNATSFlushTimeout)
		defer cancel()
	}

	if err := p.nc.FlushWithContext(ctx); err != nil {
		return errors.Wrap(err, "failed to flush NATS connection")
	}

	return nil
}

func (p *NATSPublisher) subject(topic events.Topic) string {
	if p.subjectPrefix == "" {
		return topic.String()
	}
	return p.subjectPrefix + "." + topic.String()
}

func (p *NATSPublisher) Close() error {
	if p.close != nil {
		p.close()
	}
	return nil
}
