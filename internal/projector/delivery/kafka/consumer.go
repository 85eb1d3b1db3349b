package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"play-economy/internal/event"
	"play-economy/internal/metrics"
	"play-economy/pkg/kafka"
	"play-economy/pkg/log"
)

// Run consumes until ctx is cancelled or the reader is closed. A message is committed only
// after it is applied; a failed apply is retried with exponential backoff. Messages that
// cannot be decoded are logged and committed so they do not block the partition.
func (c *Consumer) Run(ctx context.Context) error {
	c.l.Info(ctx, "projector consumer started")
	backoff := c.minBackoff

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.l.Info(ctx, "projector consumer stopped")
				return nil
			}
			c.l.Errorf(ctx, "projector.kafka.FetchMessage: %v", err)
			if !c.sleep(ctx, backoff) {
				return nil
			}
			backoff = c.next(backoff)
			continue
		}
		backoff = c.minBackoff

		if err := c.handle(ctx, msg); err != nil {
			c.l.Info(ctx, "projector consumer stopped")
			return nil
		}
	}
}

// handle applies msg until it succeeds, then commits it. It returns an error only when
// ctx ends first, leaving msg uncommitted for redelivery.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) error {
	ctx = log.WithRequestID(ctx, fmt.Sprintf("%s/%d/%d", msg.Topic, msg.Partition, msg.Offset))

	e, err := event.Decode(msg)
	if err != nil {
		metrics.EventsConsumedTotal.WithLabelValues("undecodable", metrics.ResultFailure).Inc()
		c.l.Errorf(ctx, "projector.kafka.Decode: skipping message key=%s: %v", msg.Key, err)
		return c.commit(ctx, msg)
	}

	backoff := c.minBackoff
	for {
		err := c.uc.Apply(ctx, e)
		metrics.EventsConsumedTotal.WithLabelValues(e.EventType(), metrics.Result(err)).Inc()
		if err == nil {
			break
		}
		c.l.Warnf(ctx, "projector.kafka.Apply %s %s: %v, retrying in %s", e.EventType(), e.EntityID(), err, backoff)
		if !c.sleep(ctx, backoff) {
			return ctx.Err()
		}
		backoff = c.next(backoff)
	}

	c.l.Debugf(ctx, "projector.kafka: applied %s %s", e.EventType(), e.EntityID())
	return c.commit(ctx, msg)
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) error {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// The message will be redelivered and re-applied, which the projector tolerates.
		c.l.Errorf(ctx, "projector.kafka.CommitMessages: %v", err)
	}
	return nil
}

func (c *Consumer) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) next(d time.Duration) time.Duration {
	d *= 2
	if d > c.maxBackoff {
		return c.maxBackoff
	}
	return d
}
