package event

import (
	"encoding/json"
	"fmt"

	"play-economy/internal/model"
	"play-economy/pkg/kafka"
)

// Encode builds the wire message for e. The key is the entity id so every event of one
// item lands on the same partition.
func Encode(e model.Event) (kafka.Message, error) {
	if e == nil {
		return kafka.Message{}, fmt.Errorf("%w: nil event", ErrMalformedEvent)
	}
	switch e.(type) {
	case model.CatalogItemCreated, model.CatalogItemUpdated, model.CatalogItemDeleted:
	default:
		return kafka.Message{}, fmt.Errorf("%w: %T", ErrUnknownEvent, e)
	}
	if e.EntityID() == "" {
		return kafka.Message{}, fmt.Errorf("%w: %s without id", ErrMalformedEvent, e.EventType())
	}

	body, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	return kafka.Message{
		Key:   []byte(e.EntityID()),
		Value: body,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(e.EventType())},
		},
	}, nil
}

// Decode parses a wire message back into its event.
func Decode(msg kafka.Message) (model.Event, error) {
	typ := headerValue(msg, HeaderEventType)

	var (
		e   model.Event
		err error
	)
	switch typ {
	case model.EventCatalogItemCreated:
		var v model.CatalogItemCreated
		err = json.Unmarshal(msg.Value, &v)
		e = v
	case model.EventCatalogItemUpdated:
		var v model.CatalogItemUpdated
		err = json.Unmarshal(msg.Value, &v)
		e = v
	case model.EventCatalogItemDeleted:
		var v model.CatalogItemDeleted
		err = json.Unmarshal(msg.Value, &v)
		e = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, typ)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedEvent, typ, err)
	}
	if e.EntityID() == "" {
		return nil, fmt.Errorf("%w: %s without id", ErrMalformedEvent, typ)
	}
	return e, nil
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
