package report

// Range bounds a report by booking date, inclusive. Empty bounds mean
// all time.
type Range struct {
	From string
	To   string
}

type Summary struct {
	TotalRevenue    float64 `db:"total_revenue" json:"total_revenue"`
	TotalBookings   int     `db:"total_bookings" json:"total_bookings"`
	TotalDiscount   float64 `db:"total_discount" json:"total_discount"`
	TotalHours      float64 `db:"total_hours" json:"total_hours"`
	AvgBookingValue float64 `db:"avg_booking_value" json:"avg_booking_value"`
}

type DailyRevenue struct {
	Date     string  `db:"date" json:"date"`
	Bookings int     `db:"bookings" json:"bookings"`
	Revenue  float64 `db:"revenue" json:"revenue"`
}

type ConsoleUsage struct {
	Console  string  `db:"console" json:"console"`
	Bookings int     `db:"bookings" json:"bookings"`
	Hours    float64 `db:"hours" json:"hours"`
	Revenue  float64 `db:"revenue" json:"revenue"`
}

type PeakHour struct {
	Hour     int `db:"hour" json:"hour"`
	Bookings int `db:"bookings" json:"bookings"`
}

// PaymentBreakdown groups mixed payments under one label regardless of the
// recorded split.
type PaymentBreakdown struct {
	Mode     string  `db:"mode" json:"mode"`
	Bookings int     `db:"bookings" json:"bookings"`
	Total    float64 `db:"total" json:"total"`
}

type LoyalCustomer struct {
	Mobile     string  `db:"mobile" json:"mobile"`
	PlayerName string  `db:"playername" json:"playername"`
	Visits     int     `db:"visits" json:"visits"`
	Revenue    float64 `db:"revenue" json:"revenue"`
}

type Dashboard struct {
	TodayRevenue    float64 `json:"today_revenue"`
	TodayBookings   int     `json:"today_bookings"`
	ActiveSessions  int     `json:"active_sessions"`
	MonthRevenue    float64 `json:"month_revenue"`
	MonthExpenses   float64 `json:"month_expenses"`
	PendingExpenses float64 `json:"pending_expenses"`
	LowStockCount   int     `json:"low_stock_count"`
}
