package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/inventree/internal/http"
	handler "github.com/rogerio-castellano/inventree/internal/http/handlers"
	"github.com/rogerio-castellano/inventree/internal/inventory"
)

func TestImportItemsHandler(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	receiveStock(r, handler.StockReceiptRequest{Name: "Widget", Quantity: 10, UnitCost: 2.00, Location: "A1"})

	csvContent := strings.Join([]string{
		"Item Name,Stock,Purchase Price,Location,Supplier",
		"Gadget,5,1.50,B2,Acme",
		"Widget,99,0.10,Z9,",    // already in the store
		"Gadget,7,2.00,B3,",     // duplicate within the batch
		"Broken,abc,1.00,B4,",   // non-numeric stock
		",5,1.00,B5,",           // blank name
		"Sprocket,3,4.00,C1,",
	}, "\n")

	w := importCSV(r, csvContent)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var res inventory.ImportResult
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if res.Added != 2 || res.Skipped != 2 || res.Errors != 2 {
		t.Errorf("expected 2 added / 2 skipped / 2 errors, got %+v", res)
	}

	// The pre-existing record survives untouched.
	got, err := itemRepo.GetByName("Widget")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got.Stock != 10 || got.Location != "A1" {
		t.Errorf("import must not overwrite existing items, got %+v", got)
	}

	// The first in-batch occurrence wins.
	got, err = itemRepo.GetByName("Gadget")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got.Stock != 5 || got.Supplier != "Acme" {
		t.Errorf("expected first Gadget row, got %+v", got)
	}
}

func TestImportItemsHandler_MissingHeader(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	w := importCSV(r, "Item Name,Stock,Location\nWidget,5,A1")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a missing required header, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Purchase Price") {
		t.Errorf("error should name the missing header, got %q", w.Body.String())
	}
}

func TestImportItemsHandler_MissingFile(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/items/import", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a file part, got %d", w.Code)
	}
}

func TestExportItemsHandler(t *testing.T) {
	t.Cleanup(clearInventory)
	r := api.NewRouter()

	receiveStock(r, handler.StockReceiptRequest{
		Name: "Widget", Quantity: 10, UnitCost: 2.5, LowStock: 5,
		SalePrice: 4.0, Supplier: "Acme", Location: "A1",
	})

	req := newRequestWithoutAuth(http.MethodGet, "/items/export", nil)
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "Item Name,Current Stock,Low Stock Level,Purchase Price,Sale Price,Supplier,Location" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Widget,10,5,2.50,4.00,Acme,A1" {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestImportTemplateHandler(t *testing.T) {
	r := api.NewRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newRequestWithoutAuth(http.MethodGet, "/items/import/template", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	want := "Item Name,Stock,Purchase Price,Location,Low Stock Level,Sale Price,Supplier"
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("unexpected template: %q", got)
	}
}
