package inventory

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemCols = []string{"id", "item", "category", "price", "stock", "low_stock_level"}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestCreateItem_DefaultCategory(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO inventory`).
		WithArgs("Coke", "Snacks", 50.0, 24, 5).
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(1, "Coke", "Snacks", 50.0, 24, 5))

	created, err := repo.Create(context.Background(), ItemRequest{
		Item: "Coke", Price: 50, Stock: 24, LowStockLevel: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Snacks", created.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE inventory SET stock = stock \+ \$1`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(1, "Coke", "Snacks", 50.0, 36, 5))

	item, err := repo.Restock(context.Background(), 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 36, item.Stock)
}

func TestRestock_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE inventory SET stock = stock \+ \$1`).
		WithArgs(12, 99).
		WillReturnRows(sqlmock.NewRows(itemCols))

	_, err := repo.Restock(context.Background(), 99, 12)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetStats_LowStock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_items`).
		WillReturnRows(sqlmock.NewRows([]string{"total_items", "stock_value"}).
			AddRow(2, 1700.0))
	mock.ExpectQuery(`WHERE stock <= low_stock_level`).
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(2, "Lays", "Snacks", 20.0, 3, 5))

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 1, stats.LowStockCount)
	require.Len(t, stats.LowStockItems, 1)
	assert.True(t, stats.LowStockItems[0].LowStock())
}
