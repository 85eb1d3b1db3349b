package event

import (
	"context"

	"play-economy/internal/model"
)

// HeaderEventType is the message header carrying the event type name.
const HeaderEventType = "event-type"

// Publisher hands catalog events to the broker. Delivery is at-least-once and
// Publish returns without waiting for any consumer.
type Publisher interface {
	Publish(ctx context.Context, e model.Event) error
}

// Handler consumes a single event.
type Handler func(ctx context.Context, e model.Event) error
