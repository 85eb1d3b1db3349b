package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// Message is the kafka-go message type, re-exported so callers need not import kafka-go.
type Message = kafkago.Message

// Header is a single message header.
type Header = kafkago.Header

// Producer writes messages to a single topic.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...Message) error
	Close() error
}

// Consumer reads messages of a consumer group. Offsets advance only on CommitMessages.
type Consumer interface {
	FetchMessage(ctx context.Context) (Message, error)
	CommitMessages(ctx context.Context, msgs ...Message) error
	Close() error
}
