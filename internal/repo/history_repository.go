package repo

import "github.com/rogerio-castellano/inventree/internal/models"

// HistoryRepository is the append-only audit ledger. Entries are never
// mutated or deleted, and deliberately survive the item they reference.
type HistoryRepository interface {
	Append(entry models.HistoryEntry) error
	// List returns the full ledger, newest first.
	List() ([]models.HistoryEntry, error)
}
