package http

import (
	"time"

	"play-economy/internal/inventory"
)

// --- Request DTOs ---

type listReq struct {
	UserID string `form:"userId" binding:"required,uuid"`
}

type grantReq struct {
	UserID        string `json:"userId"        binding:"required,uuid"`
	CatalogItemID string `json:"catalogItemId" binding:"required,uuid"`
	Quantity      int    `json:"quantity"      binding:"required,min=1"`
}

func (r grantReq) toInput() inventory.GrantInput {
	return inventory.GrantInput{
		UserID:        r.UserID,
		CatalogItemID: r.CatalogItemID,
		Quantity:      r.Quantity,
	}
}

// --- Response DTOs ---

type entryResp struct {
	CatalogItemID    string    `json:"catalogItemId"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Quantity         int       `json:"quantity"`
	AcquiredDate     time.Time `json:"acquiredDate"`
	CatalogItemKnown bool      `json:"catalogItemKnown"`
}

func (h *handler) newListResp(out inventory.ListOutput) []entryResp {
	items := make([]entryResp, len(out.Items))
	for i, e := range out.Items {
		items[i] = entryResp{
			CatalogItemID:    e.CatalogItemID,
			Name:             e.Name,
			Description:      e.Description,
			Quantity:         e.Quantity,
			AcquiredDate:     e.AcquiredDate,
			CatalogItemKnown: e.CatalogItemKnown,
		}
	}
	return items
}

type grantResp struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	CatalogItemID string    `json:"catalogItemId"`
	Quantity      int       `json:"quantity"`
	AcquiredDate  time.Time `json:"acquiredDate"`
}

func (h *handler) newGrantResp(out inventory.GrantOutput) grantResp {
	return grantResp{
		ID:            out.Item.ID,
		UserID:        out.Item.UserID,
		CatalogItemID: out.Item.CatalogItemID,
		Quantity:      out.Item.Quantity,
		AcquiredDate:  out.Item.AcquiredDate,
	}
}
