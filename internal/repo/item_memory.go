package repo

import (
	"sort"
	"strings"

	"github.com/rogerio-castellano/inventree/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository,
// used by the handler tests.
type InMemoryItemRepository struct {
	items  []models.Item
	nextID int
}

func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.Item{},
		nextID: 1,
	}
}

func (r *InMemoryItemRepository) GetByName(name string) (models.Item, error) {
	for _, it := range r.items {
		if it.Name == name {
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func matchesSearch(it models.Item, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(it.Name, search) ||
		strings.Contains(it.Location, search) ||
		strings.Contains(it.Supplier, search)
}

func (r *InMemoryItemRepository) List(f ItemFilter) ([]models.Item, error) {
	var filtered []models.Item
	for _, it := range r.items {
		if matchesSearch(it, f.Search) {
			filtered = append(filtered, it)
		}
	}

	key := f.SortColumn()
	// SliceStable keeps insertion order on ties.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if f.Descending {
			a, b = b, a
		}
		switch key {
		case "stock":
			return a.Stock < b.Stock
		case "low_stock":
			return a.LowStock < b.LowStock
		case "purchase_price":
			return a.PurchasePrice < b.PurchasePrice
		case "sale_price":
			return a.SalePrice < b.SalePrice
		case "supplier":
			return a.Supplier < b.Supplier
		case "location":
			return a.Location < b.Location
		default:
			return a.Name < b.Name
		}
	})
	return filtered, nil
}

func (r *InMemoryItemRepository) Create(item models.Item) (models.Item, error) {
	for _, it := range r.items {
		if it.Name == item.Name {
			return models.Item{}, ErrDuplicatedItemName
		}
	}
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryItemRepository) CreateMany(items []models.Item) error {
	// Validate the whole batch before touching state so a failure inserts nothing.
	seen := map[string]bool{}
	for _, item := range items {
		if seen[item.Name] {
			return ErrDuplicatedItemName
		}
		seen[item.Name] = true
		for _, it := range r.items {
			if it.Name == item.Name {
				return ErrDuplicatedItemName
			}
		}
	}
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.items = append(r.items, item)
	}
	return nil
}

func (r *InMemoryItemRepository) Update(item models.Item) error {
	for i, it := range r.items {
		if it.Name == item.Name {
			item.ID = it.ID
			r.items[i] = item
			return nil
		}
	}
	return nil
}

func (r *InMemoryItemRepository) Delete(name string) error {
	for i, it := range r.items {
		if it.Name == name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryItemRepository) LowStockReport() ([]models.LowStockItem, []models.LowStockItem, error) {
	var critical, warning []models.LowStockItem
	for _, it := range r.items {
		entry := models.LowStockItem{Name: it.Name, Stock: it.Stock, LowStock: it.LowStock}
		switch {
		case it.Stock <= it.LowStock:
			critical = append(critical, entry)
		case it.LowStock > 0 && float64(it.Stock) <= float64(it.LowStock)*1.1:
			warning = append(warning, entry)
		}
	}
	return critical, warning, nil
}

func (r *InMemoryItemRepository) Clear() {
	r.items = []models.Item{}
}
