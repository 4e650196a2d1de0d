package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ListFilter struct {
	Category string
	Status   string
	Month    string // YYYY-MM
}

type Repository interface {
	Create(ctx context.Context, req ExpenseRequest) (*Expense, error)
	GetByID(ctx context.Context, id int) (*Expense, error)
	Update(ctx context.Context, id int, req ExpenseRequest) (*Expense, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter ListFilter) ([]Expense, error)
	MarkPaid(ctx context.Context, id int) error
	GetStats(ctx context.Context, month string) (*Stats, error)
}

const expenseColumns = `id, to_char(date, 'YYYY-MM-DD') AS date, category,
	vendor, amount, payment_mode, status, notes`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func defaults(req ExpenseRequest) ExpenseRequest {
	if req.PaymentMode == "" {
		req.PaymentMode = "Cash"
	}
	if req.Status == "" {
		req.Status = StatusPaid
	}
	return req
}

func (r *repository) Create(ctx context.Context, req ExpenseRequest) (*Expense, error) {
	req = defaults(req)
	var e Expense
	query := `
		INSERT INTO expenses (date, category, vendor, amount, payment_mode, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + expenseColumns
	err := r.db.GetContext(ctx, &e, query,
		req.Date, req.Category, req.Vendor, req.Amount, req.PaymentMode, req.Status, req.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &e, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Expense, error) {
	var e Expense
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	err := r.db.GetContext(ctx, &e, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, id int, req ExpenseRequest) (*Expense, error) {
	req = defaults(req)
	var e Expense
	query := `
		UPDATE expenses
		SET date = $1, category = $2, vendor = $3, amount = $4,
			payment_mode = $5, status = $6, notes = $7
		WHERE id = $8
		RETURNING ` + expenseColumns
	err := r.db.GetContext(ctx, &e, query,
		req.Date, req.Category, req.Vendor, req.Amount, req.PaymentMode,
		req.Status, req.Notes, id)
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return &e, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Expense, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Month != "" {
		args = append(args, filter.Month)
		conds = append(conds, fmt.Sprintf("to_char(date, 'YYYY-MM') = $%d", len(args)))
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"

	expenses := []Expense{}
	if err := r.db.SelectContext(ctx, &expenses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (r *repository) MarkPaid(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET status = 'paid' WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark expense paid: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (r *repository) GetStats(ctx context.Context, month string) (*Stats, error) {
	cond := ""
	args := []interface{}{}
	if month != "" {
		cond = ` WHERE to_char(date, 'YYYY-MM') = $1`
		args = append(args, month)
	}

	var totals struct {
		Total        float64 `db:"total"`
		PendingTotal float64 `db:"pending_total"`
	}
	query := `
		SELECT COALESCE(SUM(amount), 0) AS total,
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS pending_total
		FROM expenses` + cond
	if err := r.db.GetContext(ctx, &totals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get expense totals: %w", err)
	}

	byCategory := []CategoryTotal{}
	query = `
		SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM expenses` + cond + `
		GROUP BY category
		ORDER BY total DESC`
	if err := r.db.SelectContext(ctx, &byCategory, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get expense categories: %w", err)
	}

	return &Stats{
		Total:        totals.Total,
		PendingTotal: totals.PendingTotal,
		ByCategory:   byCategory,
	}, nil
}
