package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/inventree/internal/models"
)

type PostgresDashboardRepository struct {
	db *sql.DB
}

func NewPostgresDashboardRepository(db *sql.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

func (r *PostgresDashboardRepository) Snapshot() (models.DashboardSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.DashboardSnapshot

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&s.TotalItems); err != nil {
		return models.DashboardSnapshot{}, err
	}
	// COALESCE keeps an empty store at 0.0 instead of NULL.
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(stock * purchase_price), 0.0) FROM inventory`).Scan(&s.TotalValue); err != nil {
		return models.DashboardSnapshot{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory WHERE stock <= low_stock`).Scan(&s.LowStockCount); err != nil {
		return models.DashboardSnapshot{}, err
	}
	return s, nil
}
