package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventree/internal/models"
	"github.com/rogerio-castellano/inventree/internal/repo"
)

// Service is the stock reconciliation engine. Every mutation goes through the
// item store and leaves exactly one entry in the history ledger; the returned
// Transition lets the caller run the threshold check afterwards.
type Service struct {
	items   repo.ItemRepository
	history repo.HistoryRepository

	// defaultLowStock is the threshold for items created without one.
	defaultLowStock int
}

func NewService(items repo.ItemRepository, history repo.HistoryRepository, defaultLowStock int) *Service {
	if defaultLowStock <= 0 {
		defaultLowStock = 1
	}
	return &Service{items: items, history: history, defaultLowStock: defaultLowStock}
}

// Transition is the before/after quantity pair of a stock mutation, with the
// threshold that was in effect. OldStock is NeverStocked when the operation
// created the item.
type Transition struct {
	OldStock  int
	NewStock  int
	Threshold int
}

// Crossed reports whether this transition crossed the low-stock threshold.
func (t Transition) Crossed() bool {
	return CrossedLow(t.OldStock, t.NewStock, t.Threshold)
}

// Lot is an incoming quantity of stock at a given unit cost. LowStock,
// SalePrice, Supplier and Location only matter when the lot creates the item;
// merging into an existing item leaves those attributes untouched.
type Lot struct {
	Name      string
	Quantity  int
	UnitCost  float64
	LowStock  int
	SalePrice float64
	Supplier  string
	Location  string
}

// ReceiveLot merges a lot into the named item using weighted-average costing:
//
//	c1 = (q0*c0 + q*c) / (q0 + q)
//
// so the stored unit cost always reflects the blended value of old and new
// inventory. If the item does not exist it is created from the lot.
func (s *Service) ReceiveLot(lot Lot) (Transition, error) {
	if lot.Quantity <= 0 {
		return Transition{}, ErrInvalidQuantity
	}

	existing, err := s.items.GetByName(lot.Name)
	if err != nil && !errors.Is(err, repo.ErrItemNotFound) {
		return Transition{}, err
	}

	if errors.Is(err, repo.ErrItemNotFound) {
		return s.createFromLot(lot)
	}

	oldStock := existing.Stock
	newStock := oldStock + lot.Quantity
	// newStock > 0 because lot.Quantity > 0 and stock never goes negative.
	existing.PurchasePrice = (float64(oldStock)*existing.PurchasePrice + float64(lot.Quantity)*lot.UnitCost) / float64(newStock)
	existing.Stock = newStock

	if err := s.items.Update(existing); err != nil {
		return Transition{}, err
	}
	s.log(lot.Name, models.ActionStockAdded,
		fmt.Sprintf("%d units added. Stock: %d -> %d.", lot.Quantity, oldStock, newStock))

	return Transition{OldStock: oldStock, NewStock: newStock, Threshold: existing.LowStock}, nil
}

func (s *Service) createFromLot(lot Lot) (Transition, error) {
	if strings.TrimSpace(lot.Location) == "" {
		return Transition{}, ErrMissingLocation
	}

	lowStock := lot.LowStock
	if lowStock <= 0 {
		lowStock = s.defaultLowStock
	}
	salePrice := lot.SalePrice
	if salePrice <= 0 {
		salePrice = lot.UnitCost
	}

	item := models.Item{
		Name:          lot.Name,
		Stock:         lot.Quantity,
		LowStock:      lowStock,
		PurchasePrice: lot.UnitCost,
		SalePrice:     salePrice,
		Supplier:      lot.Supplier,
		Location:      lot.Location,
	}
	if _, err := s.items.Create(item); err != nil {
		return Transition{}, err
	}
	s.log(lot.Name, models.ActionCreated, fmt.Sprintf("Item created with stock %d.", lot.Quantity))

	return Transition{OldStock: NeverStocked, NewStock: lot.Quantity, Threshold: lowStock}, nil
}

// RecordSale removes sold units from stock. The weighted-average cost is
// unchanged by a sale.
func (s *Service) RecordSale(name string, quantity int) (Transition, error) {
	if quantity <= 0 {
		return Transition{}, ErrInvalidQuantity
	}

	item, err := s.items.GetByName(name)
	if err != nil {
		return Transition{}, err
	}
	if quantity > item.Stock {
		return Transition{}, ErrInsufficientStock
	}

	oldStock := item.Stock
	item.Stock -= quantity
	if err := s.items.Update(item); err != nil {
		return Transition{}, err
	}
	s.log(name, models.ActionSold,
		fmt.Sprintf("%d units sold. Stock: %d -> %d.", quantity, oldStock, item.Stock))

	return Transition{OldStock: oldStock, NewStock: item.Stock, Threshold: item.LowStock}, nil
}

// Details is the full set of mutable item attributes for an edit.
type Details struct {
	Stock         int
	LowStock      int
	PurchasePrice float64
	SalePrice     float64
	Supplier      string
	Location      string
}

// UpdateDetails replaces every mutable attribute of the named item and logs
// only the fields that actually changed.
func (s *Service) UpdateDetails(name string, d Details) (Transition, error) {
	item, err := s.items.GetByName(name)
	if err != nil {
		return Transition{}, err
	}

	var changes []string
	if item.Stock != d.Stock {
		changes = append(changes, fmt.Sprintf("Stock: %d -> %d", item.Stock, d.Stock))
	}
	if item.LowStock != d.LowStock {
		changes = append(changes, fmt.Sprintf("Low Stock: %d -> %d", item.LowStock, d.LowStock))
	}
	if item.PurchasePrice != d.PurchasePrice {
		changes = append(changes, fmt.Sprintf("Purchase Price: %.2f -> %.2f", item.PurchasePrice, d.PurchasePrice))
	}
	if item.SalePrice != d.SalePrice {
		changes = append(changes, fmt.Sprintf("Sale Price: %.2f -> %.2f", item.SalePrice, d.SalePrice))
	}
	if item.Supplier != d.Supplier {
		changes = append(changes, fmt.Sprintf("Supplier: '%s' -> '%s'", item.Supplier, d.Supplier))
	}
	if item.Location != d.Location {
		changes = append(changes, fmt.Sprintf("Location: '%s' -> '%s'", item.Location, d.Location))
	}

	oldStock := item.Stock
	item.Stock = d.Stock
	item.LowStock = d.LowStock
	item.PurchasePrice = d.PurchasePrice
	item.SalePrice = d.SalePrice
	item.Supplier = d.Supplier
	item.Location = d.Location

	if err := s.items.Update(item); err != nil {
		return Transition{}, err
	}
	if len(changes) > 0 {
		s.log(name, models.ActionUpdated, strings.Join(changes, "; "))
	}

	return Transition{OldStock: oldStock, NewStock: d.Stock, Threshold: d.LowStock}, nil
}

// Remove deletes the named item. The DELETED ledger entry is written first
// and survives the deletion; removal is irreversible.
func (s *Service) Remove(name string) error {
	if _, err := s.items.GetByName(name); err != nil {
		return err
	}
	s.log(name, models.ActionDeleted, "Item removed from inventory.")
	return s.items.Delete(name)
}

func (s *Service) log(itemName, action, details string) {
	entry := models.HistoryEntry{
		Timestamp: time.Now().Format(models.TimestampLayout),
		ItemName:  itemName,
		Action:    action,
		Details:   details,
	}
	// The ledger append rides on the same operation; a failure here should
	// not undo a committed stock mutation.
	_ = s.history.Append(entry)
}
