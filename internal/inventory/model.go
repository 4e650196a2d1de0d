package inventory

type Item struct {
	ID            int     `db:"id" json:"id"`
	Item          string  `db:"item" json:"item"`
	Category      string  `db:"category" json:"category"`
	Price         float64 `db:"price" json:"price"`
	Stock         int     `db:"stock" json:"stock"`
	LowStockLevel int     `db:"low_stock_level" json:"low_stock_level"`
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i *Item) LowStock() bool {
	return i.Stock <= i.LowStockLevel
}

type ItemRequest struct {
	Item          string  `json:"item" binding:"required"`
	Category      string  `json:"category"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Stock         int     `json:"stock" binding:"gte=0"`
	LowStockLevel int     `json:"low_stock_level" binding:"gte=0"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type Stats struct {
	TotalItems    int     `json:"total_items"`
	StockValue    float64 `json:"stock_value"`
	LowStockCount int     `json:"low_stock_count"`
	LowStockItems []Item  `json:"low_stock_items"`
}
