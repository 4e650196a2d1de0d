// Package pricing computes what a session costs. Everything here is a pure
// function of its inputs so the summary can be recomputed on every edit of
// the booking form without touching the store.
package pricing

import (
	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
)

type Input struct {
	Console       string
	Players       int
	DurationHours float64
	Rates         []catalog.Rate
	SelectedItems []int
	Menu          []catalog.MenuItem
	Discount      float64
}

// Quote carries both totals: Total is clamped at zero for display, RawTotal
// is the unclamped figure that gets persisted. They diverge only when the
// discount exceeds the session cost, which is kept as-is pending a product
// decision on over-discounting.
type Quote struct {
	ConsoleCost float64 `json:"console_cost"`
	AddOnCost   float64 `json:"addon_cost"`
	Total       float64 `json:"total"`
	RawTotal    float64 `json:"raw_total"`
}

// findRate returns the first rate matching the console and player count,
// or nil. No fallback exists for an unmatched pair; the session then prices
// at zero.
func findRate(rates []catalog.Rate, console string, players int) *catalog.Rate {
	for i := range rates {
		if rates[i].Console == console && rates[i].Players == players {
			return &rates[i]
		}
	}
	return nil
}

// Compute derives the pro-rated console cost from the rate table, adds the
// selected menu items and subtracts the discount.
func Compute(in Input) Quote {
	var q Quote

	if rate := findRate(in.Rates, in.Console, in.Players); rate != nil && rate.Hours > 0 {
		hourly := rate.Price / rate.Hours
		q.ConsoleCost = hourly * in.DurationHours
	}

	selected := make(map[int]bool, len(in.SelectedItems))
	for _, id := range in.SelectedItems {
		selected[id] = true
	}
	for _, item := range in.Menu {
		if selected[item.ID] {
			q.AddOnCost += item.Price
		}
	}

	q.RawTotal = q.ConsoleCost + q.AddOnCost - in.Discount
	q.Total = q.RawTotal
	if q.Total < 0 {
		q.Total = 0
	}
	return q
}

// HasRate reports whether the table prices the console and player count at
// all, letting callers surface the silent-zero case without changing it.
func HasRate(rates []catalog.Rate, console string, players int) bool {
	return findRate(rates, console, players) != nil
}
