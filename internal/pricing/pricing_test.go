package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
)

var testRates = []catalog.Rate{
	{ID: 1, Console: "PS5", Players: 2, Hours: 1, Price: 200, Status: "active"},
	{ID: 2, Console: "PS5", Players: 4, Hours: 1, Price: 300, Status: "active"},
	{ID: 3, Console: "Xbox", Players: 2, Hours: 2, Price: 300, Status: "active"},
}

var testMenu = []catalog.MenuItem{
	{ID: 1, Name: "Coke", Price: 50},
	{ID: 2, Name: "Fries", Price: 60},
}

func TestCompute_ProRatedConsoleCost(t *testing.T) {
	q := Compute(Input{
		Console:       "PS5",
		Players:       2,
		DurationHours: 2.5,
		Rates:         testRates,
	})

	assert.Equal(t, 500.0, q.ConsoleCost)
	assert.Equal(t, 0.0, q.AddOnCost)
	assert.Equal(t, 500.0, q.Total)
}

func TestCompute_ReferenceHoursScaling(t *testing.T) {
	// 300 rupees buy 2 hours, so one hour costs 150.
	q := Compute(Input{
		Console:       "Xbox",
		Players:       2,
		DurationHours: 1,
		Rates:         testRates,
	})

	assert.Equal(t, 150.0, q.ConsoleCost)
}

func TestCompute_AddOnsAndDiscount(t *testing.T) {
	q := Compute(Input{
		Console:       "PS5",
		Players:       2,
		DurationHours: 2.5,
		Rates:         testRates,
		SelectedItems: []int{1},
		Menu:          testMenu,
	})
	assert.Equal(t, 550.0, q.Total)

	q = Compute(Input{
		Console:       "PS5",
		Players:       2,
		DurationHours: 2.5,
		Rates:         testRates,
		SelectedItems: []int{1},
		Menu:          testMenu,
		Discount:      100,
	})
	assert.Equal(t, 450.0, q.Total)
	assert.Equal(t, 450.0, q.RawTotal)
}

func TestCompute_NoMatchingRate(t *testing.T) {
	q := Compute(Input{
		Console:       "Switch",
		Players:       2,
		DurationHours: 1,
		Rates:         testRates,
	})

	// Unmatched console+players prices at zero rather than failing.
	assert.Equal(t, 0.0, q.ConsoleCost)
	assert.False(t, HasRate(testRates, "Switch", 2))
}

func TestCompute_FirstMatchWins(t *testing.T) {
	rates := append([]catalog.Rate{
		{ID: 9, Console: "PS5", Players: 2, Hours: 1, Price: 999},
	}, testRates...)

	q := Compute(Input{
		Console:       "PS5",
		Players:       2,
		DurationHours: 1,
		Rates:         rates,
	})

	assert.Equal(t, 999.0, q.ConsoleCost)
}

func TestCompute_OverDiscount(t *testing.T) {
	q := Compute(Input{
		Console:       "PS5",
		Players:       2,
		DurationHours: 0.5,
		Rates:         testRates,
		Discount:      500,
	})

	// Display clamps at zero; the stored figure keeps the negative value.
	assert.Equal(t, 0.0, q.Total)
	assert.Equal(t, -400.0, q.RawTotal)
}
