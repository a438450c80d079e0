package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/inventree/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

const itemColumns = `id, name, stock, low_stock, purchase_price, sale_price, supplier, location`

func (r *PostgresItemRepository) GetByName(name string) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE name = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var it models.Item
	err := r.db.QueryRowContext(ctx, query, name).
		Scan(&it.ID, &it.Name, &it.Stock, &it.LowStock, &it.PurchasePrice, &it.SalePrice, &it.Supplier, &it.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresItemRepository) List(f ItemFilter) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory`
	args := []any{}
	if f.Search != "" {
		// LIKE is case-sensitive in Postgres, which is the contract here.
		query += ` WHERE name LIKE $1 OR location LIKE $1 OR supplier LIKE $1`
		args = append(args, "%"+f.Search+"%")
	}

	dir := "ASC"
	if f.Descending {
		dir = "DESC"
	}
	// id preserves insertion order as the stable tie-break.
	query += fmt.Sprintf(" ORDER BY %s %s, id ASC", f.SortColumn(), dir)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Stock, &it.LowStock, &it.PurchasePrice, &it.SalePrice, &it.Supplier, &it.Location); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) Create(it models.Item) (models.Item, error) {
	query := `INSERT INTO inventory (name, stock, low_stock, purchase_price, sale_price, supplier, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		it.Name, it.Stock, it.LowStock, it.PurchasePrice, it.SalePrice, it.Supplier, it.Location).Scan(&it.ID)
	if isUniqueViolation(err) {
		return models.Item{}, ErrDuplicatedItemName
	}
	return it, err
}

func (r *PostgresItemRepository) CreateMany(items []models.Item) error {
	if len(items) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch insert: %w", err)
	}

	query := `INSERT INTO inventory (name, stock, low_stock, purchase_price, sale_price, supplier, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, query,
			it.Name, it.Stock, it.LowStock, it.PurchasePrice, it.SalePrice, it.Supplier, it.Location); err != nil {
			tx.Rollback()
			if isUniqueViolation(err) {
				return ErrDuplicatedItemName
			}
			return fmt.Errorf("batch insert failed: %w", err)
		}
	}
	return tx.Commit()
}

func (r *PostgresItemRepository) Update(it models.Item) error {
	query := `UPDATE inventory
		SET stock = $1, low_stock = $2, purchase_price = $3, sale_price = $4, supplier = $5, location = $6
		WHERE name = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Zero rows affected means the name does not exist; callers are expected
	// to have looked the item up first, so this stays a no-op.
	_, err := r.db.ExecContext(ctx, query,
		it.Stock, it.LowStock, it.PurchasePrice, it.SalePrice, it.Supplier, it.Location, it.Name)
	return err
}

func (r *PostgresItemRepository) Delete(name string) error {
	query := `DELETE FROM inventory WHERE name = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, name)
	return err
}

func (r *PostgresItemRepository) LowStockReport() ([]models.LowStockItem, []models.LowStockItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	critical, err := r.queryLowStock(ctx, `SELECT name, stock, low_stock FROM inventory WHERE stock <= low_stock ORDER BY id`)
	if err != nil {
		return nil, nil, err
	}
	warning, err := r.queryLowStock(ctx,
		`SELECT name, stock, low_stock FROM inventory WHERE stock > low_stock AND stock <= low_stock * 1.1 AND low_stock > 0 ORDER BY id`)
	if err != nil {
		return nil, nil, err
	}
	return critical, warning, nil
}

func (r *PostgresItemRepository) queryLowStock(ctx context.Context, query string) ([]models.LowStockItem, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.LowStockItem
	for rows.Next() {
		var it models.LowStockItem
		if err := rows.Scan(&it.Name, &it.Stock, &it.LowStock); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
