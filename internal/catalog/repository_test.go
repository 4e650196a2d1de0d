package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreateConsole(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO consoles.*`).
		WithArgs("PS5 Station 1", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "created_at"}).
			AddRow(1, "PS5 Station 1", "active", time.Now()))

	console, err := repo.CreateConsole(context.Background(), "PS5 Station 1", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, console.ID)
	assert.Equal(t, "PS5 Station 1", console.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetConsoles_ActiveOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, status, created_at FROM consoles WHERE status = 'active' ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "created_at"}).
			AddRow(1, "PS5 Station 1", "active", time.Now()).
			AddRow(2, "Xbox Station 1", "active", time.Now()))

	consoles, err := repo.GetConsoles(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, consoles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHours_OrderedAscending(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, hour_value, label, status FROM master_hours.*ORDER BY hour_value`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hour_value", "label", "status"}).
			AddRow(1, 0.5, "30 Min", "active").
			AddRow(2, 1.0, "1 Hr", "active").
			AddRow(3, 1.5, "1.5 Hrs", "active"))

	hours, err := repo.GetHours(context.Background(), false)
	assert.NoError(t, err)
	assert.Len(t, hours, 3)
	assert.Equal(t, 0.5, hours[0].HourValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO pricing_rates.*`).
		WithArgs("PS5", 2, 1.0, 200.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "console", "players", "hours", "price", "status"}).
			AddRow(1, "PS5", 2, 1.0, 200.0, "active"))

	rate, err := repo.CreateRate(context.Background(), CreateRateRequest{
		Console: "PS5",
		Players: 2,
		Hours:   1.0,
		Price:   200.0,
	})
	assert.NoError(t, err)
	assert.Equal(t, "PS5", rate.Console)
	assert.Equal(t, 200.0, rate.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM pricing_rates WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRate(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMenuItems(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, category, price, status FROM menu_items WHERE status = 'active' ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price", "status"}).
			AddRow(1, "Coke", "Drinks", 40.0, "active").
			AddRow(2, "Fries", "Snacks", 50.0, "active"))

	items, err := repo.GetMenuItems(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 40.0, items[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}
