package catalog

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrEntryNotFound = errors.New("catalog entry not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateConsole(ctx context.Context, name, status string) (*Console, error) {
	if status == "" {
		status = "active"
	}
	query := `
		INSERT INTO consoles (name, status)
		VALUES ($1, $2)
		RETURNING id, name, status, created_at
	`

	var c Console
	if err := r.db.GetContext(ctx, &c, query, name, status); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetConsoles(ctx context.Context, activeOnly bool) ([]Console, error) {
	query := `SELECT id, name, status, created_at FROM consoles`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`

	var consoles []Console
	if err := r.db.SelectContext(ctx, &consoles, query); err != nil {
		return nil, err
	}
	return consoles, nil
}

func (r *repository) DeleteConsole(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM consoles WHERE id = $1`, id)
}

func (r *repository) CreateHour(ctx context.Context, value float64, label string) (*Hour, error) {
	query := `
		INSERT INTO master_hours (hour_value, label)
		VALUES ($1, $2)
		RETURNING id, hour_value, label, status
	`

	var h Hour
	if err := r.db.GetContext(ctx, &h, query, value, label); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repository) GetHours(ctx context.Context, activeOnly bool) ([]Hour, error) {
	query := `SELECT id, hour_value, label, status FROM master_hours`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY hour_value`

	var hours []Hour
	if err := r.db.SelectContext(ctx, &hours, query); err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *repository) DeleteHour(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM master_hours WHERE id = $1`, id)
}

func (r *repository) CreatePlayerCount(ctx context.Context, count int) (*PlayerCount, error) {
	query := `
		INSERT INTO master_players (player_count)
		VALUES ($1)
		RETURNING id, player_count, status
	`

	var p PlayerCount
	if err := r.db.GetContext(ctx, &p, query, count); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetPlayerCounts(ctx context.Context, activeOnly bool) ([]PlayerCount, error) {
	query := `SELECT id, player_count, status FROM master_players`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY player_count`

	var counts []PlayerCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) DeletePlayerCount(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM master_players WHERE id = $1`, id)
}

func (r *repository) CreateRate(ctx context.Context, req CreateRateRequest) (*Rate, error) {
	query := `
		INSERT INTO pricing_rates (console, players, hours, price, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING id, console, players, hours, price, status
	`

	var rate Rate
	err := r.db.GetContext(ctx, &rate, query, req.Console, req.Players, req.Hours, req.Price)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *repository) GetRates(ctx context.Context, activeOnly bool) ([]Rate, error) {
	query := `SELECT id, console, players, hours, price, status FROM pricing_rates`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY id`

	var rates []Rate
	if err := r.db.SelectContext(ctx, &rates, query); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *repository) DeleteRate(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM pricing_rates WHERE id = $1`, id)
}

func (r *repository) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error) {
	category := req.Category
	if category == "" {
		category = "Snacks"
	}
	query := `
		INSERT INTO menu_items (name, category, price, status)
		VALUES ($1, $2, $3, 'active')
		RETURNING id, name, category, price, status
	`

	var item MenuItem
	err := r.db.GetContext(ctx, &item, query, req.Name, category, req.Price)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetMenuItems(ctx context.Context, activeOnly bool) ([]MenuItem, error) {
	query := `SELECT id, name, category, price, status FROM menu_items`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`

	var items []MenuItem
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) DeleteMenuItem(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
}

func (r *repository) deleteByID(ctx context.Context, query string, id int) error {
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}
	return nil
}
