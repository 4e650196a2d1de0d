package catalog

import "math"

// SnapIndex returns the index of the catalog entry closest to value. When a
// user edits the end time by hand the resulting duration can be any number;
// the duration selector still has to land on a real catalog position, so the
// nearest entry wins. On an exact tie the earlier entry is kept. The actual
// duration, not the snapped one, is what prices the booking.
//
// Returns -1 for an empty catalog.
func SnapIndex(value float64, hours []Hour) int {
	closest := -1
	minDiff := math.Inf(1)
	for i, h := range hours {
		d := math.Abs(h.HourValue - value)
		if d < minDiff {
			minDiff = d
			closest = i
		}
	}
	return closest
}
