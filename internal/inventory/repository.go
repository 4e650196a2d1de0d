package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrItemNotFound = errors.New("inventory item not found")

type Repository interface {
	Create(ctx context.Context, req ItemRequest) (*Item, error)
	GetByID(ctx context.Context, id int) (*Item, error)
	Update(ctx context.Context, id int, req ItemRequest) (*Item, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, category string) ([]Item, error)
	Restock(ctx context.Context, id, quantity int) (*Item, error)
	GetStats(ctx context.Context) (*Stats, error)
}

const itemColumns = `id, item, category, price, stock, low_stock_level`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req ItemRequest) (*Item, error) {
	if req.Category == "" {
		req.Category = "Snacks"
	}
	var item Item
	query := `
		INSERT INTO inventory (item, category, price, stock, low_stock_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns
	err := r.db.GetContext(ctx, &item, query,
		req.Item, req.Category, req.Price, req.Stock, req.LowStockLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return &item, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Item, error) {
	var item Item
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1`
	err := r.db.GetContext(ctx, &item, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return &item, nil
}

func (r *repository) Update(ctx context.Context, id int, req ItemRequest) (*Item, error) {
	var item Item
	query := `
		UPDATE inventory
		SET item = $1, category = $2, price = $3, stock = $4, low_stock_level = $5
		WHERE id = $6
		RETURNING ` + itemColumns
	err := r.db.GetContext(ctx, &item, query,
		req.Item, req.Category, req.Price, req.Stock, req.LowStockLevel, id)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return &item, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, category string) ([]Item, error) {
	items := []Item{}
	query := `SELECT ` + itemColumns + ` FROM inventory`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY item ASC`
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (r *repository) Restock(ctx context.Context, id, quantity int) (*Item, error) {
	var item Item
	query := `
		UPDATE inventory SET stock = stock + $1 WHERE id = $2
		RETURNING ` + itemColumns
	err := r.db.GetContext(ctx, &item, query, quantity, id)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to restock item: %w", err)
	}
	return &item, nil
}

func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	var totals struct {
		TotalItems int     `db:"total_items"`
		StockValue float64 `db:"stock_value"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COUNT(*) AS total_items,
			COALESCE(SUM(price * stock), 0) AS stock_value
		FROM inventory`)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory totals: %w", err)
	}

	low := []Item{}
	err = r.db.SelectContext(ctx, &low, `
		SELECT `+itemColumns+` FROM inventory
		WHERE stock <= low_stock_level
		ORDER BY stock ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock items: %w", err)
	}

	return &Stats{
		TotalItems:    totals.TotalItems,
		StockValue:    totals.StockValue,
		LowStockCount: len(low),
		LowStockItems: low,
	}, nil
}
