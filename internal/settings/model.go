package settings

import (
	"time"

	"github.com/Logananthan283/Veyil-Gaming/internal/booking"
	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
	"github.com/Logananthan283/Veyil-Gaming/internal/expense"
	"github.com/Logananthan283/Veyil-Gaming/internal/inventory"
)

// Settings is the single business configuration row.
type Settings struct {
	ID         int     `db:"id" json:"-"`
	CenterName string  `db:"center_name" json:"center_name"`
	Currency   string  `db:"currency" json:"currency"`
	TaxRate    float64 `db:"tax_rate" json:"tax_rate"`
	OpenTime   string  `db:"open_time" json:"open_time"`
	CloseTime  string  `db:"close_time" json:"close_time"`
	Address    string  `db:"address" json:"address"`
}

type SettingsRequest struct {
	CenterName string  `json:"center_name" binding:"required"`
	Currency   string  `json:"currency" binding:"required"`
	TaxRate    float64 `json:"tax_rate" binding:"gte=0"`
	OpenTime   string  `json:"open_time" binding:"required"`
	CloseTime  string  `json:"close_time" binding:"required"`
	Address    string  `json:"address"`
}

// Backup is a full JSON snapshot of the operational data. Restoring one
// replaces everything it covers; user accounts are deliberately left out so
// a restore cannot lock the admin out.
type Backup struct {
	ExportedAt time.Time             `json:"exported_at"`
	Settings   Settings              `json:"settings"`
	Consoles   []catalog.Console     `json:"consoles"`
	Hours      []catalog.Hour        `json:"hours"`
	Players    []catalog.PlayerCount `json:"players"`
	Rates      []catalog.Rate        `json:"rates"`
	MenuItems  []catalog.MenuItem    `json:"menu_items"`
	Bookings   []booking.Booking     `json:"bookings"`
	Expenses   []expense.Expense     `json:"expenses"`
	Inventory  []inventory.Item      `json:"inventory"`
}
