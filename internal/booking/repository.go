package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

const bookingColumns = `id, playername, mobile, place, console, players, hours,
	starttime, to_char(date, 'YYYY-MM-DD') AS date, finalamount, discount,
	additional_players, menu_item_ids, paymentmode, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (id, playername, mobile, place, console, players, hours,
			starttime, date, finalamount, discount, additional_players,
			menu_item_ids, paymentmode, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), b.PlayerName, b.Mobile, b.Place, b.Console, b.Players, b.Hours,
		b.StartTime, b.Date, b.FinalAmount, b.Discount, b.AdditionalPlayers,
		b.MenuItemIDs, b.PaymentMode, b.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.GetContext(ctx, &b, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		UPDATE bookings
		SET playername = $1, mobile = $2, place = $3, console = $4, players = $5,
			hours = $6, starttime = $7, date = $8, finalamount = $9, discount = $10,
			additional_players = $11, menu_item_ids = $12, paymentmode = $13,
			status = $14
		WHERE id = $15
		RETURNING ` + bookingColumns

	var updated Booking
	err := r.db.GetContext(ctx, &updated, query,
		b.PlayerName, b.Mobile, b.Place, b.Console, b.Players, b.Hours,
		b.StartTime, b.Date, b.FinalAmount, b.Discount, b.AdditionalPlayers,
		b.MenuItemIDs, b.PaymentMode, b.Status, b.ID)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Booking, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(playername ILIKE $%d OR mobile LIKE $%d OR console ILIKE $%d)", n, n, n))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Booking, error) {
	bookings := []Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'active' ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("failed to list active bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) MarkCompleted(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = 'completed' WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return false, fmt.Errorf("failed to complete booking: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
