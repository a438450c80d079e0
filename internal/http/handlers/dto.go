package handlers

// StockReceiptRequest is a lot of incoming stock. LowStock, SalePrice,
// Supplier and Location are only consulted when the item does not exist yet.
type StockReceiptRequest struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
	LowStock  int     `json:"low_stock,omitempty"`
	SalePrice float64 `json:"sale_price,omitempty"`
	Supplier  string  `json:"supplier,omitempty"`
	Location  string  `json:"location,omitempty"`
}

type ItemRequest struct {
	Stock         int     `json:"stock"`
	LowStock      int     `json:"low_stock"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Supplier      string  `json:"supplier"`
	Location      string  `json:"location"`
}

type ItemResponse struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	Stock         int     `json:"stock"`
	LowStock      int     `json:"low_stock"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Supplier      string  `json:"supplier"`
	Location      string  `json:"location"`
	LowStockFlag  bool    `json:"low_stock_flag"`
}

type SaleRequest struct {
	Quantity int `json:"quantity"`
}

// Notification reports what happened to the low-stock alert after a
// threshold-crossing mutation. Sent is false both when delivery failed and
// when no crossing occurred; Message explains which.
type Notification struct {
	Triggered bool   `json:"triggered"`
	Sent      bool   `json:"sent"`
	Message   string `json:"message,omitempty"`
}

type StockMutationResult struct {
	Item         ItemResponse `json:"item"`
	Notification Notification `json:"notification"`
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
