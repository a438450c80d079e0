package models

// Item represents a stocked inventory item. Name is the business key and is
// unique across the store; PurchasePrice is the weighted-average unit cost of
// the stock on hand.
type Item struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Stock         int     `json:"stock"`
	LowStock      int     `json:"low_stock"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Supplier      string  `json:"supplier"`
	Location      string  `json:"location"`
}

// LowStockItem is the slice of an Item the notification email cares about.
type LowStockItem struct {
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	LowStock int    `json:"low_stock"`
}
