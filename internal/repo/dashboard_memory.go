package repo

import "github.com/rogerio-castellano/inventree/internal/models"

// InMemoryDashboardRepository computes the snapshot from an item repository.
type InMemoryDashboardRepository struct {
	items ItemRepository
}

func NewInMemoryDashboardRepository(items ItemRepository) *InMemoryDashboardRepository {
	return &InMemoryDashboardRepository{items: items}
}

func (r *InMemoryDashboardRepository) Snapshot() (models.DashboardSnapshot, error) {
	items, err := r.items.List(ItemFilter{})
	if err != nil {
		return models.DashboardSnapshot{}, err
	}

	var s models.DashboardSnapshot
	s.TotalItems = len(items)
	for _, it := range items {
		s.TotalValue += float64(it.Stock) * it.PurchasePrice
		if it.Stock <= it.LowStock {
			s.LowStockCount++
		}
	}
	return s, nil
}
