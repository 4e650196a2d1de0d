package report

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	GetSummary(ctx context.Context, rng Range) (*Summary, error)
	GetDailyRevenue(ctx context.Context, rng Range) ([]DailyRevenue, error)
	GetConsoleUsage(ctx context.Context, rng Range) ([]ConsoleUsage, error)
	GetPeakHours(ctx context.Context, rng Range) ([]PeakHour, error)
	GetPaymentBreakdown(ctx context.Context, rng Range) ([]PaymentBreakdown, error)
	GetLoyalCustomers(ctx context.Context, rng Range, limit int) ([]LoyalCustomer, error)
	GetDashboard(ctx context.Context, today, month string) (*Dashboard, error)
	ExportCSV(ctx context.Context, rng Range) ([]byte, error)
	ExportPDF(ctx context.Context, rng Range) ([]byte, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// rangeCond builds the WHERE clause for a date range starting at the given
// placeholder index.
func rangeCond(rng Range) (string, []interface{}) {
	cond := ""
	args := []interface{}{}
	if rng.From != "" {
		args = append(args, rng.From)
		cond += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if rng.To != "" {
		args = append(args, rng.To)
		cond += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if cond == "" {
		return "", args
	}
	return " WHERE " + cond[len(" AND "):], args
}

func (r *repository) GetSummary(ctx context.Context, rng Range) (*Summary, error) {
	cond, args := rangeCond(rng)
	var s Summary
	query := `
		SELECT COALESCE(SUM(finalamount), 0) AS total_revenue,
			COUNT(*) AS total_bookings,
			COALESCE(SUM(discount), 0) AS total_discount,
			COALESCE(SUM(hours), 0) AS total_hours,
			COALESCE(AVG(finalamount), 0) AS avg_booking_value
		FROM bookings` + cond
	if err := r.db.GetContext(ctx, &s, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get report summary: %w", err)
	}
	return &s, nil
}

func (r *repository) GetDailyRevenue(ctx context.Context, rng Range) ([]DailyRevenue, error) {
	cond, args := rangeCond(rng)
	rows := []DailyRevenue{}
	query := `
		SELECT to_char(date, 'YYYY-MM-DD') AS date,
			COUNT(*) AS bookings,
			COALESCE(SUM(finalamount), 0) AS revenue
		FROM bookings` + cond + `
		GROUP BY date
		ORDER BY date ASC`
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get daily revenue: %w", err)
	}
	return rows, nil
}

func (r *repository) GetConsoleUsage(ctx context.Context, rng Range) ([]ConsoleUsage, error) {
	cond, args := rangeCond(rng)
	rows := []ConsoleUsage{}
	query := `
		SELECT console,
			COUNT(*) AS bookings,
			COALESCE(SUM(hours), 0) AS hours,
			COALESCE(SUM(finalamount), 0) AS revenue
		FROM bookings` + cond + `
		GROUP BY console
		ORDER BY revenue DESC`
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get console usage: %w", err)
	}
	return rows, nil
}

func (r *repository) GetPeakHours(ctx context.Context, rng Range) ([]PeakHour, error) {
	cond, args := rangeCond(rng)
	rows := []PeakHour{}
	query := `
		SELECT CAST(split_part(starttime, ':', 1) AS INT) AS hour,
			COUNT(*) AS bookings
		FROM bookings` + cond + `
		GROUP BY hour
		ORDER BY hour ASC`
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get peak hours: %w", err)
	}
	return rows, nil
}

func (r *repository) GetPaymentBreakdown(ctx context.Context, rng Range) ([]PaymentBreakdown, error) {
	cond, args := rangeCond(rng)
	rows := []PaymentBreakdown{}
	query := `
		SELECT CASE WHEN paymentmode LIKE 'Mixed%' THEN 'Mixed' ELSE paymentmode END AS mode,
			COUNT(*) AS bookings,
			COALESCE(SUM(finalamount), 0) AS total
		FROM bookings` + cond + `
		GROUP BY mode
		ORDER BY total DESC`
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get payment breakdown: %w", err)
	}
	return rows, nil
}

func (r *repository) GetLoyalCustomers(ctx context.Context, rng Range, limit int) ([]LoyalCustomer, error) {
	if limit <= 0 {
		limit = 10
	}
	cond, args := rangeCond(rng)
	args = append(args, limit)
	rows := []LoyalCustomer{}
	query := `
		SELECT mobile,
			MAX(playername) AS playername,
			COUNT(*) AS visits,
			COALESCE(SUM(finalamount), 0) AS revenue
		FROM bookings` + cond + `
		GROUP BY mobile
		ORDER BY visits DESC, revenue DESC
		LIMIT $` + fmt.Sprint(len(args))
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get loyal customers: %w", err)
	}
	return rows, nil
}

func (r *repository) GetDashboard(ctx context.Context, today, month string) (*Dashboard, error) {
	var d Dashboard

	var bookings struct {
		TodayRevenue   float64 `db:"today_revenue"`
		TodayBookings  int     `db:"today_bookings"`
		ActiveSessions int     `db:"active_sessions"`
		MonthRevenue   float64 `db:"month_revenue"`
	}
	err := r.db.GetContext(ctx, &bookings, `
		SELECT COALESCE(SUM(finalamount) FILTER (WHERE date = $1), 0) AS today_revenue,
			COUNT(*) FILTER (WHERE date = $1) AS today_bookings,
			COUNT(*) FILTER (WHERE status = 'active') AS active_sessions,
			COALESCE(SUM(finalamount) FILTER (WHERE to_char(date, 'YYYY-MM') = $2), 0) AS month_revenue
		FROM bookings`, today, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard bookings: %w", err)
	}
	d.TodayRevenue = bookings.TodayRevenue
	d.TodayBookings = bookings.TodayBookings
	d.ActiveSessions = bookings.ActiveSessions
	d.MonthRevenue = bookings.MonthRevenue

	var expenses struct {
		MonthExpenses   float64 `db:"month_expenses"`
		PendingExpenses float64 `db:"pending_expenses"`
	}
	err = r.db.GetContext(ctx, &expenses, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE to_char(date, 'YYYY-MM') = $1), 0) AS month_expenses,
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS pending_expenses
		FROM expenses`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard expenses: %w", err)
	}
	d.MonthExpenses = expenses.MonthExpenses
	d.PendingExpenses = expenses.PendingExpenses

	err = r.db.GetContext(ctx, &d.LowStockCount,
		`SELECT COUNT(*) FROM inventory WHERE stock <= low_stock_level`)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stock count: %w", err)
	}
	return &d, nil
}
