package booking

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

const (
	PaymentCash  = "Cash"
	PaymentUPI   = "UPI"
	PaymentMixed = "Mixed"
)

// Player is one additional player on a booking. Phone may be empty; when
// present it must be a 10-digit number.
type Player struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PlayerList and IntList are stored as jsonb columns.
type PlayerList []Player

func (p PlayerList) Value() (driver.Value, error) {
	if p == nil {
		p = PlayerList{}
	}
	return json.Marshal(p)
}

func (p *PlayerList) Scan(src interface{}) error {
	return scanJSON(src, p)
}

type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	return json.Marshal(l)
}

func (l *IntList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return errors.New("unsupported jsonb source type")
	}
}

type Booking struct {
	ID                string     `db:"id" json:"id"`
	PlayerName        string     `db:"playername" json:"playername"`
	Mobile            string     `db:"mobile" json:"mobile"`
	Place             string     `db:"place" json:"place"`
	Console           string     `db:"console" json:"console"`
	Players           int        `db:"players" json:"players"`
	Hours             float64    `db:"hours" json:"hours"`
	StartTime         string     `db:"starttime" json:"starttime"`
	Date              string     `db:"date" json:"date"`
	FinalAmount       float64    `db:"finalamount" json:"finalamount"`
	Discount          float64    `db:"discount" json:"discount"`
	AdditionalPlayers PlayerList `db:"additional_players" json:"additional_players"`
	MenuItemIDs       IntList    `db:"menu_item_ids" json:"menu_item_ids"`
	PaymentMode       string     `db:"paymentmode" json:"paymentmode"`
	Status            string     `db:"status" json:"status"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// BookingRequest is the full booking payload. Creates and edits both send it;
// an edit replaces the stored record wholesale under the same id.
type BookingRequest struct {
	PlayerName        string   `json:"playername"`
	Mobile            string   `json:"mobile"`
	Place             string   `json:"place"`
	Console           string   `json:"console" binding:"required"`
	Players           int      `json:"players" binding:"required,min=1"`
	Hours             float64  `json:"hours" binding:"required,gt=0"`
	StartTime         string   `json:"starttime" binding:"required"`
	Date              string   `json:"date" binding:"required"`
	AdditionalPlayers []Player `json:"additional_players"`
	MenuItemIDs       []int    `json:"menu_item_ids"`
	Discount          float64  `json:"discount" binding:"gte=0"`
	PaymentMethod     string   `json:"paymentmethod" binding:"omitempty,oneof=Cash UPI Mixed"`
	CashAmount        float64  `json:"cash_amount"`
}

// QuoteRequest is the live-summary preview: every change on the form posts
// the current draft and gets back recomputed times, slider position and cost.
// EndTime is set only when the operator edited the end time by hand; the
// actual duration is then derived from it instead of Hours.
type QuoteRequest struct {
	Console     string  `json:"console" binding:"required"`
	Players     int     `json:"players" binding:"required,min=1"`
	StartTime   string  `json:"starttime" binding:"required"`
	Hours       float64 `json:"hours"`
	EndTime     string  `json:"endtime"`
	MenuItemIDs []int   `json:"menu_item_ids"`
	Discount    float64 `json:"discount" binding:"gte=0"`
}

type QuotePreview struct {
	Hours        float64 `json:"hours"`
	EndTime      string  `json:"endtime"`
	StartDisplay string  `json:"start_display"`
	EndDisplay   string  `json:"end_display"`
	SliderIndex  int     `json:"slider_index"`
	ConsoleCost  float64 `json:"console_cost"`
	AddOnCost    float64 `json:"addon_cost"`
	Total        float64 `json:"total"`
}

// FormatPaymentMode renders the persisted payment mode string. A mixed
// payment records its split inline, with the UPI share never negative.
func FormatPaymentMode(method string, cash, total float64) string {
	if method == "" {
		return PaymentCash
	}
	if method != PaymentMixed {
		return method
	}
	upi := total - cash
	if upi < 0 {
		upi = 0
	}
	return fmt.Sprintf("Mixed (C:%.2f, U:%.2f)", cash, upi)
}
