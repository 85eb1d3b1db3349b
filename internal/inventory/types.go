package inventory

import (
	"time"

	"play-economy/internal/model"
)

// --- UseCase Inputs ---

type GrantInput struct {
	UserID        string
	CatalogItemID string
	Quantity      int
}

// --- UseCase Outputs ---

type GrantOutput struct {
	Item model.InventoryItem
}

// Entry is one inventory line as shown to the user. CatalogItemKnown is false when the
// catalog mirror has no record for the item yet, or no longer has one; Name and
// Description are empty then.
type Entry struct {
	CatalogItemID    string
	Name             string
	Description      string
	Quantity         int
	AcquiredDate     time.Time
	CatalogItemKnown bool
}

type ListOutput struct {
	Items []Entry
}
