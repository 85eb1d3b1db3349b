package http

import (
	"strings"
	"time"

	"play-economy/internal/catalog"
	"play-economy/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Description string  `json:"description" binding:"max=1000"`
	Price       float64 `json:"price"       binding:"min=0"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errBlankName
	}
	return nil
}

func (r createReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Name        string  `json:"name"        binding:"required,max=255"`
	Description string  `json:"description" binding:"max=1000"`
	Price       float64 `json:"price"       binding:"min=0"`
}

func (r updateReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errBlankName
	}
	return nil
}

func (r updateReq) toInput() catalog.UpdateItemInput {
	return catalog.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedDate time.Time `json:"createdDate"`
}

func newItemResp(item model.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CreatedDate: item.CreatedDate,
	}
}

func (h *handler) newListResp(out catalog.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return items
}

// idData is the error payload of a write whose notification failed.
func idData(id string) map[string]interface{} {
	return map[string]interface{}{"id": id}
}
