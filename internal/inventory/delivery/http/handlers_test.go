package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"play-economy/internal/inventory"
	"play-economy/internal/middleware"
	"play-economy/internal/model"
	"play-economy/pkg/log"
)

type stubUseCase struct {
	granted inventory.GrantInput
	userID  string
	err     error
}

func (s *stubUseCase) Grant(ctx context.Context, input inventory.GrantInput) (inventory.GrantOutput, error) {
	s.granted = input
	return inventory.GrantOutput{Item: model.InventoryItem{ID: "rec-1", UserID: input.UserID, CatalogItemID: input.CatalogItemID, Quantity: input.Quantity}}, s.err
}

func (s *stubUseCase) List(ctx context.Context, userID string) (inventory.ListOutput, error) {
	s.userID = userID
	if s.err != nil {
		return inventory.ListOutput{}, s.err
	}
	return inventory.ListOutput{Items: []inventory.Entry{
		{CatalogItemID: potionID, Name: "Potion", Quantity: 2, CatalogItemKnown: true},
		{CatalogItemID: "c-2", Quantity: 1},
	}}, nil
}

const (
	userID   = "7d1c2a4e-5b6f-4c3d-8e9f-0a1b2c3d4e5f"
	potionID = "0f9e8d7c-6b5a-4493-8281-706f5e4d3c2b"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(uc inventory.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{Service: "inventory"}))
	return r
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestList(t *testing.T) {
	t.Run("passes userId and renders entries", func(t *testing.T) {
		uc := &stubUseCase{}
		w, env := do(newTestRouter(uc), http.MethodGet, "/api/v1/items?userId="+userID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.userID != userID {
			t.Errorf("expected userId %s, got %q", userID, uc.userID)
		}

		var got []entryResp
		if err := json.Unmarshal(env.Data, &got); err != nil || len(got) != 2 {
			t.Fatalf("expected 2 entries, got %s (%v)", env.Data, err)
		}
		if got[1].Name != "" || got[1].CatalogItemKnown {
			t.Errorf("unexpected unknown entry %+v", got[1])
		}
	})

	t.Run("invalid user id", func(t *testing.T) {
		uc := &stubUseCase{err: inventory.ErrInvalidUserID}
		if w, env := do(newTestRouter(uc), http.MethodGet, "/api/v1/items", ""); w.Code != http.StatusBadRequest || env.ErrorCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("user id not a uuid", func(t *testing.T) {
		uc := &stubUseCase{}
		if w, _ := do(newTestRouter(uc), http.MethodGet, "/api/v1/items?userId=u-1", ""); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if uc.userID != "" {
			t.Errorf("expected the use case not to be called, got %q", uc.userID)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		uc := &stubUseCase{err: errors.New("connection reset")}
		if w, _ := do(newTestRouter(uc), http.MethodGet, "/api/v1/items?userId="+userID, ""); w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestGrant(t *testing.T) {
	t.Run("binds body", func(t *testing.T) {
		uc := &stubUseCase{}
		w, env := do(newTestRouter(uc), http.MethodPost, "/api/v1/items", `{"userId":"`+userID+`","catalogItemId":"`+potionID+`","quantity":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		want := inventory.GrantInput{UserID: userID, CatalogItemID: potionID, Quantity: 3}
		if uc.granted != want {
			t.Errorf("expected %+v, got %+v", want, uc.granted)
		}
		var got grantResp
		json.Unmarshal(env.Data, &got)
		if got.ID != "rec-1" || got.Quantity != 3 {
			t.Errorf("unexpected response %+v", got)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		if w, _ := do(newTestRouter(&stubUseCase{}), http.MethodPost, "/api/v1/items", `{"quantity":"many"}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("use case rejection", func(t *testing.T) {
		uc := &stubUseCase{err: inventory.ErrInvalidQuantity}
		if w, _ := do(newTestRouter(uc), http.MethodPost, "/api/v1/items", `{"userId":"`+userID+`","catalogItemId":"`+potionID+`","quantity":1}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	invalid := []struct {
		name string
		body string
	}{
		{name: "zero quantity", body: `{"userId":"` + userID + `","catalogItemId":"` + potionID + `","quantity":0}`},
		{name: "negative quantity", body: `{"userId":"` + userID + `","catalogItemId":"` + potionID + `","quantity":-2}`},
		{name: "user id not a uuid", body: `{"userId":"u-1","catalogItemId":"` + potionID + `","quantity":1}`},
		{name: "catalog item id not a uuid", body: `{"userId":"` + userID + `","catalogItemId":"c-1","quantity":1}`},
		{name: "missing catalog item id", body: `{"userId":"` + userID + `","quantity":1}`},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc := &stubUseCase{}
			if w, _ := do(newTestRouter(uc), http.MethodPost, "/api/v1/items", tc.body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if uc.granted != (inventory.GrantInput{}) {
				t.Errorf("expected the use case not to be called, got %+v", uc.granted)
			}
		})
	}
}
