package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventree/internal/models"
	"github.com/rogerio-castellano/inventree/internal/repo"
)

// ImportRow is one raw CSV row. All fields arrive as strings; coercion
// happens here, once, and never deeper in the engine.
type ImportRow struct {
	Name          string
	Stock         string
	PurchasePrice string
	LowStock      string
	SalePrice     string
	Supplier      string
	Location      string
}

// ImportResult summarizes a batch import. Added + Skipped + Errors always
// equals the number of input rows.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// ReconcileRows validates and deduplicates a batch of external rows against
// the given set of existing names. Malformed rows are counted and skipped,
// never fatal. Duplicates keep the existing record; within the batch the
// first occurrence wins. The accepted list preserves input order.
func ReconcileRows(rows []ImportRow, existing map[string]bool, defaultLowStock int) ([]models.Item, ImportResult) {
	if defaultLowStock <= 0 {
		defaultLowStock = 1
	}

	accepted := make(map[string]bool, len(existing))
	for name := range existing {
		accepted[name] = true
	}

	var items []models.Item
	var res ImportResult

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" || row.Stock == "" || row.PurchasePrice == "" || row.Location == "" {
			res.Errors++
			continue
		}
		if accepted[name] {
			res.Skipped++
			continue
		}

		stock, err := strconv.Atoi(row.Stock)
		if err != nil {
			res.Errors++
			continue
		}
		purchasePrice, err := strconv.ParseFloat(row.PurchasePrice, 64)
		if err != nil {
			res.Errors++
			continue
		}

		lowStock := defaultLowStock
		if row.LowStock != "" {
			if lowStock, err = strconv.Atoi(row.LowStock); err != nil {
				res.Errors++
				continue
			}
		}
		salePrice := purchasePrice
		if row.SalePrice != "" {
			if salePrice, err = strconv.ParseFloat(row.SalePrice, 64); err != nil {
				res.Errors++
				continue
			}
		}

		items = append(items, models.Item{
			Name:          name,
			Stock:         stock,
			LowStock:      lowStock,
			PurchasePrice: purchasePrice,
			SalePrice:     salePrice,
			Supplier:      row.Supplier,
			Location:      row.Location,
		})
		accepted[name] = true
		res.Added++
	}
	return items, res
}

// Import reconciles the rows against current store state, inserts the
// accepted items as one batch, and appends a CREATED ledger entry per item.
// A row is either fully inserted or fully rejected.
func (s *Service) Import(rows []ImportRow) (ImportResult, error) {
	current, err := s.items.List(repo.ItemFilter{})
	if err != nil {
		return ImportResult{}, err
	}
	existing := make(map[string]bool, len(current))
	for _, it := range current {
		existing[it.Name] = true
	}

	items, res := ReconcileRows(rows, existing, s.defaultLowStock)
	if len(items) == 0 {
		return res, nil
	}

	if err := s.items.CreateMany(items); err != nil {
		return ImportResult{}, err
	}
	for _, it := range items {
		s.log(it.Name, models.ActionCreated, fmt.Sprintf("Item imported from CSV with stock %d.", it.Stock))
	}
	return res, nil
}
