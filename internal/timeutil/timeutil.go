// Package timeutil holds the clock-string arithmetic the booking engine is
// built on. Times travel through the system as "HH:MM" 24-hour strings and
// durations as fractional hours, matching how they are stored.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var ErrBadClock = errors.New("invalid HH:MM time")

// parseClock returns minutes since midnight for an "HH:MM" string.
func parseClock(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, ErrBadClock
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrBadClock
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrBadClock
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrBadClock
	}
	return h*60 + m, nil
}

// Display12h formats a 24-hour clock string for display, e.g. "13:05" ->
// "01:05 PM". Empty or malformed input yields the placeholder "--:-- --".
func Display12h(t24 string) string {
	if t24 == "" {
		return "--:-- --"
	}
	total, err := parseClock(t24)
	if err != nil {
		return "--:-- --"
	}
	h := total / 60
	m := total % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, m, suffix)
}

// ElapsedHours returns the duration between two clock strings in hours.
// An end before the start is taken to mean the next day, so the result is
// always non-negative and below 24.
func ElapsedHours(start24, end24 string) (float64, error) {
	start, err := parseClock(start24)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(end24)
	if err != nil {
		return 0, err
	}
	diff := end - start
	if diff < 0 {
		diff += minutesPerDay
	}
	return float64(diff) / 60, nil
}

// AddHours advances a clock string by a fractional number of hours, wrapping
// past midnight. Fractions of a minute truncate.
func AddHours(start24 string, hours float64) (string, error) {
	start, err := parseClock(start24)
	if err != nil {
		return "", err
	}
	total := float64(start) + hours*60
	endH := int(total/60) % 24
	endM := int(total) % 60
	return fmt.Sprintf("%02d:%02d", endH, endM), nil
}

// SessionEnd resolves a booking's end instant from its date ("2006-01-02"),
// start clock and duration. The duration may push the end past midnight into
// the next calendar date, which is why comparisons use the full instant and
// not the wrapped clock string.
func SessionEnd(date, start24 string, hours float64) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start, err := parseClock(start24)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(start)*time.Minute +
		time.Duration(hours*float64(time.Hour))), nil
}

// MinutesRemaining returns whole minutes from now until end, truncated and
// never negative.
func MinutesRemaining(now, end time.Time) int {
	if !now.Before(end) {
		return 0
	}
	return int(end.Sub(now) / time.Minute)
}
