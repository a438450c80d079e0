package handlers_test_suite

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/inventree/internal/http"
	handler "github.com/rogerio-castellano/inventree/internal/http/handlers"
)

func TestReceiveStockHandler_CreatesItem(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	w := receiveStock(r, handler.StockReceiptRequest{
		Name: "Widget", Quantity: 10, UnitCost: 2.00, LowStock: 5, Location: "A1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.StockMutationResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Item.Stock != 10 || resp.Item.PurchasePrice != 2.00 {
		t.Errorf("expected 10 units at 2.00, got %d at %v", resp.Item.Stock, resp.Item.PurchasePrice)
	}
	if resp.Notification.Triggered {
		t.Error("creation above threshold should not trigger an alert")
	}
}

func TestReceiveStockHandler_MergesWithWeightedAverage(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 10, UnitCost: 2.00, LowStock: 5, Location: "A1"})
	w := receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 5, UnitCost: 3.00})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for a merge, got %d", w.Code)
	}

	var resp handler.StockMutationResult
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Item.Stock != 15 {
		t.Errorf("expected stock 15, got %d", resp.Item.Stock)
	}
	if want := (10*2.00 + 5*3.00) / 15; math.Abs(resp.Item.PurchasePrice-want) > 1e-9 {
		t.Errorf("expected weighted average %v, got %v", want, resp.Item.PurchasePrice)
	}
}

func TestReceiveStockHandler_Invalid(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.StockReceiptRequest
	}{
		{"empty name", handler.StockReceiptRequest{Quantity: 5, UnitCost: 1.00, Location: "A1"}},
		{"zero quantity", handler.StockReceiptRequest{Name: "Widget", Quantity: 0, UnitCost: 1.00, Location: "A1"}},
		{"negative quantity", handler.StockReceiptRequest{Name: "Widget", Quantity: -2, UnitCost: 1.00, Location: "A1"}},
		{"negative cost", handler.StockReceiptRequest{Name: "Widget", Quantity: 5, UnitCost: -1.00, Location: "A1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := receiveStock(r, tt.payload); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}

	// New item without a location is rejected by the engine.
	if w := receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 5, UnitCost: 1.00}); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing location, got %d", w.Code)
	}
}

func TestReceiveStockHandler_Unauthorized(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.StockReceiptRequest{Name: "Widget", Quantity: 5, UnitCost: 1.00, Location: "A1"})
	req := newRequestWithoutAuth(http.MethodPost, "/items/stock", body)
	w := serve(r, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestRecordSaleHandler(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 15, UnitCost: 2.00, LowStock: 5, Location: "A1"})

	w := recordSale(r, "Widget", 11)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.StockMutationResult
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Item.Stock != 4 {
		t.Errorf("expected stock 4 after sale, got %d", resp.Item.Stock)
	}
	if !resp.Item.LowStockFlag {
		t.Error("item at 4/5 should carry the low stock flag")
	}
	if !resp.Notification.Triggered {
		t.Error("sale crossing the threshold should trigger an alert")
	}
	if gateway.calls != 1 {
		t.Errorf("expected exactly one gateway call, got %d", gateway.calls)
	}
	if len(gateway.critical) != 1 || gateway.critical[0].Name != "Widget" {
		t.Errorf("unexpected critical list: %+v", gateway.critical)
	}

	// A second sale below the threshold does not re-trigger.
	w = recordSale(r, "Widget", 1)
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Notification.Triggered {
		t.Error("a repeated drop below the threshold must not re-trigger")
	}
	if gateway.calls != 1 {
		t.Errorf("gateway called again: %d", gateway.calls)
	}
}

func TestRecordSaleHandler_Errors(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 3, UnitCost: 2.00, Location: "A1"})

	if w := recordSale(r, "Ghost", 1); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", w.Code)
	}
	if w := recordSale(r, "Widget", 4); w.Code != http.StatusConflict {
		t.Errorf("expected 409 for insufficient stock, got %d", w.Code)
	}
	if w := recordSale(r, "Widget", 0); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero quantity, got %d", w.Code)
	}
}
