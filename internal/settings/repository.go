package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Logananthan283/Veyil-Gaming/internal/booking"
	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
	"github.com/Logananthan283/Veyil-Gaming/internal/expense"
	"github.com/Logananthan283/Veyil-Gaming/internal/inventory"
)

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, req SettingsRequest) (*Settings, error)
	Export(ctx context.Context) (*Backup, error)
	Import(ctx context.Context, backup *Backup) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const settingsColumns = `id, center_name, currency, tax_rate, open_time, close_time, address`

func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	query := `SELECT ` + settingsColumns + ` FROM business_settings WHERE id = 1`
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, req SettingsRequest) (*Settings, error) {
	var s Settings
	query := `
		UPDATE business_settings
		SET center_name = $1, currency = $2, tax_rate = $3,
			open_time = $4, close_time = $5, address = $6
		WHERE id = 1
		RETURNING ` + settingsColumns
	err := r.db.GetContext(ctx, &s, query,
		req.CenterName, req.Currency, req.TaxRate, req.OpenTime, req.CloseTime, req.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return &s, nil
}

func (r *repository) Export(ctx context.Context) (*Backup, error) {
	backup := &Backup{ExportedAt: time.Now().UTC()}

	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	backup.Settings = *settings

	selects := []struct {
		dst   interface{}
		query string
	}{
		{&backup.Consoles, `SELECT id, name, status, created_at FROM consoles ORDER BY id`},
		{&backup.Hours, `SELECT id, hour_value, label, status FROM master_hours ORDER BY id`},
		{&backup.Players, `SELECT id, player_count, status FROM master_players ORDER BY id`},
		{&backup.Rates, `SELECT id, console, players, hours, price, status FROM pricing_rates ORDER BY id`},
		{&backup.MenuItems, `SELECT id, name, category, price, status FROM menu_items ORDER BY id`},
		{&backup.Bookings, `SELECT id, playername, mobile, place, console, players, hours,
			starttime, to_char(date, 'YYYY-MM-DD') AS date, finalamount, discount,
			additional_players, menu_item_ids, paymentmode, status, created_at
			FROM bookings ORDER BY created_at`},
		{&backup.Expenses, `SELECT id, to_char(date, 'YYYY-MM-DD') AS date, category,
			vendor, amount, payment_mode, status, notes FROM expenses ORDER BY id`},
		{&backup.Inventory, `SELECT id, item, category, price, stock, low_stock_level FROM inventory ORDER BY id`},
	}
	for _, sel := range selects {
		if err := r.db.SelectContext(ctx, sel.dst, sel.query); err != nil {
			return nil, fmt.Errorf("failed to export data: %w", err)
		}
	}
	return backup, nil
}

// Import replaces all operational data with the backup's contents inside one
// transaction. Serial sequences are realigned after the explicit-id inserts.
func (r *repository) Import(ctx context.Context, backup *Backup) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin restore: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"bookings", "expenses", "inventory", "menu_items",
		"pricing_rates", "master_players", "master_hours", "consoles",
	} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, c := range backup.Consoles {
		if err := insertConsole(ctx, tx, c); err != nil {
			return err
		}
	}
	for _, h := range backup.Hours {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO master_hours (id, hour_value, label, status) VALUES ($1, $2, $3, $4)`,
			h.ID, h.HourValue, h.Label, h.Status); err != nil {
			return fmt.Errorf("failed to restore hours: %w", err)
		}
	}
	for _, p := range backup.Players {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO master_players (id, player_count, status) VALUES ($1, $2, $3)`,
			p.ID, p.PlayerCount, p.Status); err != nil {
			return fmt.Errorf("failed to restore players: %w", err)
		}
	}
	for _, rate := range backup.Rates {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pricing_rates (id, console, players, hours, price, status)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rate.ID, rate.Console, rate.Players, rate.Hours, rate.Price, rate.Status); err != nil {
			return fmt.Errorf("failed to restore rates: %w", err)
		}
	}
	for _, m := range backup.MenuItems {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO menu_items (id, name, category, price, status) VALUES ($1, $2, $3, $4, $5)`,
			m.ID, m.Name, m.Category, m.Price, m.Status); err != nil {
			return fmt.Errorf("failed to restore menu items: %w", err)
		}
	}
	for i := range backup.Bookings {
		if err := insertBooking(ctx, tx, &backup.Bookings[i]); err != nil {
			return err
		}
	}
	for _, e := range backup.Expenses {
		if err := insertExpense(ctx, tx, e); err != nil {
			return err
		}
	}
	for _, item := range backup.Inventory {
		if err := insertInventory(ctx, tx, item); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE business_settings
		SET center_name = $1, currency = $2, tax_rate = $3,
			open_time = $4, close_time = $5, address = $6
		WHERE id = 1`,
		backup.Settings.CenterName, backup.Settings.Currency, backup.Settings.TaxRate,
		backup.Settings.OpenTime, backup.Settings.CloseTime, backup.Settings.Address); err != nil {
		return fmt.Errorf("failed to restore settings: %w", err)
	}

	for _, table := range []string{
		"consoles", "master_hours", "master_players", "pricing_rates",
		"menu_items", "expenses", "inventory",
	} {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s`,
			table, table)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to realign %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit restore: %w", err)
	}
	return nil
}

func insertConsole(ctx context.Context, tx *sqlx.Tx, c catalog.Console) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO consoles (id, name, status, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore consoles: %w", err)
	}
	return nil
}

func insertBooking(ctx context.Context, tx *sqlx.Tx, b *booking.Booking) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (id, playername, mobile, place, console, players, hours,
			starttime, date, finalamount, discount, additional_players,
			menu_item_ids, paymentmode, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		b.ID, b.PlayerName, b.Mobile, b.Place, b.Console, b.Players, b.Hours,
		b.StartTime, b.Date, b.FinalAmount, b.Discount, b.AdditionalPlayers,
		b.MenuItemIDs, b.PaymentMode, b.Status, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore bookings: %w", err)
	}
	return nil
}

func insertExpense(ctx context.Context, tx *sqlx.Tx, e expense.Expense) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO expenses (id, date, category, vendor, amount, payment_mode, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Date, e.Category, e.Vendor, e.Amount, e.PaymentMode, e.Status, e.Notes)
	if err != nil {
		return fmt.Errorf("failed to restore expenses: %w", err)
	}
	return nil
}

func insertInventory(ctx context.Context, tx *sqlx.Tx, item inventory.Item) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO inventory (id, item, category, price, stock, low_stock_level)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Item, item.Category, item.Price, item.Stock, item.LowStockLevel)
	if err != nil {
		return fmt.Errorf("failed to restore inventory: %w", err)
	}
	return nil
}
