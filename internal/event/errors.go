package event

import "errors"

var (
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrMalformedEvent = errors.New("malformed event")
	ErrPublish        = errors.New("publish event failed")
)
