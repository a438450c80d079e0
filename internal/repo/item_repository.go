package repo

import "github.com/rogerio-castellano/inventree/internal/models"

// ItemRepository defines the interface for inventory item data operations.
type ItemRepository interface {
	// GetByName is an exact-match lookup; returns ErrItemNotFound on a miss.
	GetByName(name string) (models.Item, error)
	// List returns items ordered by the filter's sort key, with ties broken
	// by insertion order.
	List(f ItemFilter) ([]models.Item, error)
	// Create inserts a new item; returns ErrDuplicatedItemName if the name is
	// taken, with no mutation.
	Create(item models.Item) (models.Item, error)
	// CreateMany inserts a batch atomically: either every item lands or none.
	CreateMany(items []models.Item) error
	// Update replaces all mutable attributes of the named item. A missing
	// name is a no-op.
	Update(item models.Item) error
	// Delete removes the named item. Deleting an absent name is a no-op.
	Delete(name string) error
	// LowStockReport returns the critical (stock <= low_stock) and warning
	// (low_stock < stock <= low_stock * 1.1, low_stock > 0) item lists.
	LowStockReport() (critical, warning []models.LowStockItem, err error)
}

// ItemFilter selects and orders a listing. Search, when non-empty, retains
// rows where it is a case-sensitive substring of name, location or supplier.
type ItemFilter struct {
	SortKey    string
	Descending bool
	Search     string
}

// sortColumns whitelists the sortable item attributes; anything else falls
// back to name.
var sortColumns = map[string]bool{
	"name":           true,
	"stock":          true,
	"low_stock":      true,
	"purchase_price": true,
	"sale_price":     true,
	"supplier":       true,
	"location":       true,
}

// SortColumn resolves the filter's sort key against the whitelist.
func (f ItemFilter) SortColumn() string {
	if sortColumns[f.SortKey] {
		return f.SortKey
	}
	return "name"
}
