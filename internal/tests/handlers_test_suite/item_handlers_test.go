package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/inventree/internal/http"
	handler "github.com/rogerio-castellano/inventree/internal/http/handlers"
	"github.com/rogerio-castellano/inventree/internal/models"
)

func seedInventory(r http.Handler) {
	receiveStock(r, handler.StockReceiptRequest{Name: "Anvil", Quantity: 2, UnitCost: 120.00, LowStock: 1, Supplier: "Forge", Location: "floor"})
	receiveStock(r, handler.StockReceiptRequest{Name: "bolt", Quantity: 40, UnitCost: 0.05, LowStock: 10, Supplier: "Acme", Location: "shelf-1"})
}

func TestGetItemsHandler(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()
	seedInventory(r)

	w := serve(r, newRequestWithoutAuth(http.MethodGet, "/items?sort=stock&dir=desc", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var items []handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(items) != 2 || items[0].Name != "bolt" {
		t.Errorf("expected bolt first on descending stock, got %+v", items)
	}

	w = serve(r, newRequestWithoutAuth(http.MethodGet, "/items?q=Forge", nil))
	json.NewDecoder(w.Body).Decode(&items)
	if len(items) != 1 || items[0].Name != "Anvil" {
		t.Errorf("expected only Anvil for q=Forge, got %+v", items)
	}

	w = serve(r, newRequestWithoutAuth(http.MethodGet, "/items?dir=sideways", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an invalid dir, got %d", w.Code)
	}
}

func TestGetItemByNameHandler(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()
	seedInventory(r)

	w := serve(r, newRequestWithoutAuth(http.MethodGet, "/items/Anvil", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var item handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&item)
	if item.Name != "Anvil" || item.Stock != 2 {
		t.Errorf("unexpected item: %+v", item)
	}

	if w := serve(r, newRequestWithoutAuth(http.MethodGet, "/items/Ghost", nil)); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", w.Code)
	}
}

func TestUpdateItemHandler(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()
	receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 10, UnitCost: 2.00, LowStock: 5, SalePrice: 3.00, Supplier: "Acme", Location: "A1"})

	w := doJSON(r, http.MethodPut, "/items/Widget", handler.ItemRequest{
		Stock: 10, LowStock: 5, PurchasePrice: 2.00, SalePrice: 3.50, Supplier: "Acme", Location: "B7",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.StockMutationResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Item.Location != "B7" || resp.Item.SalePrice != 3.50 {
		t.Errorf("update not applied: %+v", resp.Item)
	}

	// Only the changed fields make it into the ledger entry.
	entries, _ := historyRepo.List()
	if len(entries) == 0 {
		t.Fatal("expected a ledger entry for the update")
	}
	last := entries[0]
	if last.Action != models.ActionUpdated {
		t.Fatalf("expected UPDATED, got %s", last.Action)
	}
	if last.Details != "Sale Price: 3.00 -> 3.50; Location: 'A1' -> 'B7'" {
		t.Errorf("unexpected details: %q", last.Details)
	}

	w = doJSON(r, http.MethodPut, "/items/Ghost", handler.ItemRequest{Stock: 1, Location: "A1"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", w.Code)
	}
}

func TestUpdateItemHandler_StockDropTriggersAlert(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()
	receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 10, UnitCost: 2.00, LowStock: 5, Location: "A1"})

	w := doJSON(r, http.MethodPut, "/items/Widget", handler.ItemRequest{
		Stock: 3, LowStock: 5, PurchasePrice: 2.00, SalePrice: 2.00, Location: "A1",
	})
	var resp handler.StockMutationResult
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Notification.Triggered {
		t.Error("manual stock correction across the threshold should trigger an alert")
	}
	if gateway.calls != 1 {
		t.Errorf("expected one gateway call, got %d", gateway.calls)
	}
}

func TestDeleteItemHandler(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()
	receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 10, UnitCost: 2.00, Location: "A1"})

	w := doJSON(r, http.MethodDelete, "/items/Widget", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	if w := serve(r, newRequestWithoutAuth(http.MethodGet, "/items/Widget", nil)); w.Code != http.StatusNotFound {
		t.Errorf("deleted item still resolves: %d", w.Code)
	}

	// The ledger keeps both the creation and the deletion.
	entries, _ := historyRepo.List()
	actions := make([]string, len(entries))
	for i, e := range entries {
		actions[i] = e.Action
	}
	if len(entries) != 2 || entries[0].Action != models.ActionDeleted {
		t.Errorf("expected [DELETED CREATED], got %v", actions)
	}

	if w := doJSON(r, http.MethodDelete, "/items/Widget", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting an absent item, got %d", w.Code)
	}
}
