package models

// History actions. Every stock-affecting operation appends exactly one entry.
const (
	ActionCreated    = "CREATED"
	ActionStockAdded = "STOCK_ADDED"
	ActionUpdated    = "UPDATED"
	ActionSold       = "SOLD"
	ActionDeleted    = "DELETED"
)

// HistoryEntry is an immutable audit record. ItemName is a denormalized copy,
// not a foreign key: entries outlive the item they describe.
type HistoryEntry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	ItemName  string `json:"item_name"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// TimestampLayout is the second-resolution format history entries are logged with.
const TimestampLayout = "2006-01-02 15:04:05"
