package models

// DashboardSnapshot is derived from the item store on demand and never persisted.
type DashboardSnapshot struct {
	TotalItems    int     `json:"total_items"`
	TotalValue    float64 `json:"total_value"`
	LowStockCount int     `json:"low_stock_count"`
}
