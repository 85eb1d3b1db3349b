package kafka

import (
	"time"

	"play-economy/internal/projector"
	"play-economy/pkg/kafka"
	"play-economy/pkg/log"
)

const (
	defaultMinBackoff = 200 * time.Millisecond
	defaultMaxBackoff = 30 * time.Second
)

// Consumer feeds catalog events from Kafka into the projector.
type Consumer struct {
	reader     kafka.Consumer
	uc         projector.UseCase
	l          log.Logger
	minBackoff time.Duration
	maxBackoff time.Duration
}

// Option customizes a Consumer.
type Option func(*Consumer)

// WithBackoff sets the redelivery backoff bounds.
func WithBackoff(min, max time.Duration) Option {
	return func(c *Consumer) {
		c.minBackoff = min
		c.maxBackoff = max
	}
}

// New creates a Consumer reading from reader.
func New(reader kafka.Consumer, uc projector.UseCase, l log.Logger, opts ...Option) *Consumer {
	c := &Consumer{
		reader:     reader,
		uc:         uc,
		l:          l,
		minBackoff: defaultMinBackoff,
		maxBackoff: defaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
