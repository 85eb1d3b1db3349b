package inventory

import "errors"

var (
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidCatalogItemID = errors.New("invalid catalog item id")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
)
