package model

import "time"

// Collection names, one per entity type.
const (
	CollectionItems          = "items"
	CollectionInventoryItems = "inventoryitems"
	CollectionCatalogItems   = "catalogitems"
)

// Document field names used in repository filters.
const (
	FieldUserID        = "userId"
	FieldCatalogItemID = "catalogItemId"
	FieldQuantity      = "quantity"
)

// Item is a sellable catalog entry owned by the Catalog service.
type Item struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	CreatedDate time.Time `json:"createdDate" bson:"createdDate"`
}

func (i Item) GetID() string { return i.ID }

// InventoryItem is the quantity of one catalog item held by one user.
// At most one exists per (UserID, CatalogItemID).
type InventoryItem struct {
	ID            string    `json:"id" bson:"_id"`
	UserID        string    `json:"userId" bson:"userId"`
	CatalogItemID string    `json:"catalogItemId" bson:"catalogItemId"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	AcquiredDate  time.Time `json:"acquiredDate" bson:"acquiredDate"`
}

func (i InventoryItem) GetID() string { return i.ID }

// CatalogItem is Inventory's read-only mirror of a catalog Item. Only the projector writes it.
type CatalogItem struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

func (i CatalogItem) GetID() string { return i.ID }
