package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type listResp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      []Item `json:"data"`
}

func (c *implClient) ListItems(ctx context.Context) ([]Item, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.R().SetContext(ctx).Get(itemsPath)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", itemsPath, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("get %s: status %d: %s", itemsPath, resp.StatusCode(), resp.String())
		}

		var body listResp
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
		return body.Data, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	items, _ := out.([]Item)
	if items == nil {
		items = []Item{}
	}
	return items, nil
}
