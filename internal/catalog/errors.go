package catalog

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidItem   = errors.New("invalid item")
	ErrInvalidID     = errors.New("invalid item id")
	ErrPublishFailed = errors.New("item saved but change notification failed")
)
