package catalog

import "play-economy/internal/model"

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Price       float64
}

type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.Item
}

type ListItemsOutput struct {
	Items []model.Item
}

type DetailItemOutput struct {
	Item model.Item
}

type UpdateItemOutput struct {
	Item model.Item
}
