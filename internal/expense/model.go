package expense

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

type Expense struct {
	ID          int     `db:"id" json:"id"`
	Date        string  `db:"date" json:"date"`
	Category    string  `db:"category" json:"category"`
	Vendor      string  `db:"vendor" json:"vendor"`
	Amount      float64 `db:"amount" json:"amount"`
	PaymentMode string  `db:"payment_mode" json:"payment_mode"`
	Status      string  `db:"status" json:"status"`
	Notes       string  `db:"notes" json:"notes"`
}

type ExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Vendor      string  `json:"vendor" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentMode string  `json:"payment_mode" binding:"omitempty,oneof=Cash UPI Card"`
	Status      string  `json:"status" binding:"omitempty,oneof=paid pending"`
	Notes       string  `json:"notes"`
}

type CategoryTotal struct {
	Category string  `db:"category" json:"category"`
	Total    float64 `db:"total" json:"total"`
	Count    int     `db:"count" json:"count"`
}

type Stats struct {
	Total        float64         `json:"total"`
	PendingTotal float64         `json:"pending_total"`
	ByCategory   []CategoryTotal `json:"by_category"`
}
