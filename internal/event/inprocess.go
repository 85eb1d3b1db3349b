package event

import (
	"context"
	"fmt"

	"play-economy/internal/model"
)

type inProcessPublisher struct {
	handlers []Handler
}

// NewInProcess returns a Publisher that hands each event to handlers synchronously,
// in registration order. It stands in for the broker when every service runs in one process.
func NewInProcess(handlers ...Handler) Publisher {
	return &inProcessPublisher{handlers: handlers}
}

func (p *inProcessPublisher) Publish(ctx context.Context, e model.Event) error {
	if _, err := Encode(e); err != nil {
		return err
	}
	for _, h := range p.handlers {
		if err := h(ctx, e); err != nil {
			return fmt.Errorf("%w: %s %s: %v", ErrPublish, e.EventType(), e.EntityID(), err)
		}
	}
	return nil
}
