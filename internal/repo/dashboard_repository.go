package repo

import "github.com/rogerio-castellano/inventree/internal/models"

// DashboardRepository derives summary statistics from the current item store
// state. Read-only; nothing is cached.
type DashboardRepository interface {
	Snapshot() (models.DashboardSnapshot, error)
}
