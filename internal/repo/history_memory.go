package repo

import (
	"sort"

	"github.com/rogerio-castellano/inventree/internal/models"
)

type InMemoryHistoryRepository struct {
	entries []models.HistoryEntry
	nextID  int
}

func NewInMemoryHistoryRepository() *InMemoryHistoryRepository {
	return &InMemoryHistoryRepository{
		entries: []models.HistoryEntry{},
		nextID:  1,
	}
}

func (r *InMemoryHistoryRepository) Append(e models.HistoryEntry) error {
	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, e)
	return nil
}

func (r *InMemoryHistoryRepository) List() ([]models.HistoryEntry, error) {
	out := make([]models.HistoryEntry, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *InMemoryHistoryRepository) Clear() {
	r.entries = []models.HistoryEntry{}
}
