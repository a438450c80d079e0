package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/inventree/internal/inventory"
	"github.com/rogerio-castellano/inventree/internal/repo"
)

// CSV import/export column names. Exact matches only; no header synonyms.
var (
	requiredHeaders = []string{"Item Name", "Stock", "Purchase Price", "Location"}
	optionalHeaders = []string{"Low Stock Level", "Sale Price", "Supplier"}

	exportHeaders = []string{
		"Item Name", "Current Stock", "Low Stock Level",
		"Purchase Price", "Sale Price", "Supplier", "Location",
	}
)

func parseImportCSV(file multipart.File) ([]inventory.ImportRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[h] = i
	}
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return nil, fmt.Errorf("CSV is missing required header %q", h)
		}
	}

	field := func(record []string, header string) string {
		i, ok := index[header]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []inventory.ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		rows = append(rows, inventory.ImportRow{
			Name:          field(record, "Item Name"),
			Stock:         field(record, "Stock"),
			PurchasePrice: field(record, "Purchase Price"),
			Location:      field(record, "Location"),
			LowStock:      field(record, "Low Stock Level"),
			SalePrice:     field(record, "Sale Price"),
			Supplier:      field(record, "Supplier"),
		})
	}
	return rows, nil
}

// ImportItemsHandler ingests a CSV batch. Malformed and duplicate rows are
// counted and skipped; the batch never aborts on a bad row, and a row is
// either fully inserted or fully rejected.
func ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseImportCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := engine.Import(rows)
	if err != nil {
		http.Error(w, "could not import items", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

// ExportItemsHandler writes the full inventory as CSV in the fixed column order.
func ExportItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.List(repo.ItemFilter{})
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)

	csvWriter := csv.NewWriter(w)
	_ = csvWriter.Write(exportHeaders)
	for _, it := range items {
		_ = csvWriter.Write([]string{
			it.Name,
			strconv.Itoa(it.Stock),
			strconv.Itoa(it.LowStock),
			strconv.FormatFloat(it.PurchasePrice, 'f', 2, 64),
			strconv.FormatFloat(it.SalePrice, 'f', 2, 64),
			it.Supplier,
			it.Location,
		})
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		log.Printf("failed to write CSV export: %v", err)
	}
}

// ImportTemplateHandler serves a header-only CSV template for imports.
func ImportTemplateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="import_template.csv"`)

	csvWriter := csv.NewWriter(w)
	_ = csvWriter.Write(append(append([]string{}, requiredHeaders...), optionalHeaders...))
	csvWriter.Flush()
}
