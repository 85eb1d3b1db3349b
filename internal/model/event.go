package model

// Catalog event type names, carried in the event-type message header.
const (
	EventCatalogItemCreated = "CatalogItemCreated"
	EventCatalogItemUpdated = "CatalogItemUpdated"
	EventCatalogItemDeleted = "CatalogItemDeleted"
)

// Event is an immutable catalog change notification.
type Event interface {
	EventType() string
	EntityID() string
}

type CatalogItemCreated struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (e CatalogItemCreated) EventType() string { return EventCatalogItemCreated }
func (e CatalogItemCreated) EntityID() string  { return e.ID }

type CatalogItemUpdated struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (e CatalogItemUpdated) EventType() string { return EventCatalogItemUpdated }
func (e CatalogItemUpdated) EntityID() string  { return e.ID }

type CatalogItemDeleted struct {
	ID string `json:"id"`
}

func (e CatalogItemDeleted) EventType() string { return EventCatalogItemDeleted }
func (e CatalogItemDeleted) EntityID() string  { return e.ID }
