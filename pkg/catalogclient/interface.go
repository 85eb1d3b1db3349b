package catalogclient

import (
	"context"
	"time"
)

// Item is the catalog item as served by the Catalog API.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedDate time.Time `json:"createdDate"`
}

// Client reads the Catalog API.
type Client interface {
	ListItems(ctx context.Context) ([]Item, error)
}
