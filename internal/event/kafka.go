package event

import (
	"context"
	"fmt"

	"play-economy/internal/metrics"
	"play-economy/internal/model"
	"play-economy/pkg/kafka"
	"play-economy/pkg/log"
)

type kafkaPublisher struct {
	producer kafka.Producer
	l        log.Logger
}

// NewKafkaPublisher publishes events through producer.
func NewKafkaPublisher(producer kafka.Producer, l log.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		l:        l,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, e model.Event) error {
	msg, err := Encode(e)
	if err != nil {
		return err
	}

	err = p.producer.WriteMessages(ctx, msg)
	metrics.EventsPublishedTotal.WithLabelValues(e.EventType(), metrics.Result(err)).Inc()
	if err != nil {
		p.l.Errorf(ctx, "event.Publish %s %s: %v", e.EventType(), e.EntityID(), err)
		return fmt.Errorf("%w: %s %s: %v", ErrPublish, e.EventType(), e.EntityID(), err)
	}

	p.l.Debugf(ctx, "event.Publish %s %s", e.EventType(), e.EntityID())
	return nil
}
