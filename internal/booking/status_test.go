package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sessionAt(date, start string, hours float64, status string) *Booking {
	return &Booking{
		Date:      date,
		StartTime: start,
		Hours:     hours,
		Status:    status,
	}
}

func clock(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestEvaluateSession_Active(t *testing.T) {
	b := sessionAt("2025-04-12", "18:00", 1.5, StatusActive)

	state := EvaluateSession(clock(t, "2025-04-12 18:10"), b)
	assert.True(t, state.Active)
	assert.Equal(t, 80, state.MinutesLeft)
	assert.Equal(t, "19:30", state.EndTime)
}

func TestEvaluateSession_ExpiredByClock(t *testing.T) {
	b := sessionAt("2025-04-12", "18:00", 1.5, StatusActive)

	state := EvaluateSession(clock(t, "2025-04-12 19:31"), b)
	assert.False(t, state.Active)
	assert.Equal(t, 0, state.MinutesLeft)
}

func TestEvaluateSession_ActiveInsideFinalMinute(t *testing.T) {
	b := sessionAt("2025-04-12", "18:00", 1.5, StatusActive)

	now, err := time.ParseInLocation("2006-01-02 15:04:05", "2025-04-12 19:29:30", time.Local)
	if err != nil {
		t.Fatal(err)
	}
	state := EvaluateSession(now, b)
	assert.True(t, state.Active)
	assert.Equal(t, 0, state.MinutesLeft)
}

func TestEvaluateSession_InactiveAtEndInstant(t *testing.T) {
	b := sessionAt("2025-04-12", "18:00", 1.5, StatusActive)

	state := EvaluateSession(clock(t, "2025-04-12 19:30"), b)
	assert.False(t, state.Active)
}

func TestEvaluateSession_CompletedNeverActive(t *testing.T) {
	b := sessionAt("2025-04-12", "18:00", 1.5, StatusCompleted)

	state := EvaluateSession(clock(t, "2025-04-12 18:10"), b)
	assert.False(t, state.Active)
	assert.Equal(t, 0, state.MinutesLeft)
}

func TestEvaluateSession_CrossesMidnight(t *testing.T) {
	b := sessionAt("2025-04-12", "23:00", 2, StatusActive)

	state := EvaluateSession(clock(t, "2025-04-13 00:30"), b)
	assert.True(t, state.Active)
	assert.Equal(t, 30, state.MinutesLeft)
	assert.Equal(t, "01:00", state.EndTime)
}

func TestEvaluateSession_BadClockInactive(t *testing.T) {
	b := sessionAt("2025-04-12", "garbage", 1, StatusActive)

	state := EvaluateSession(clock(t, "2025-04-12 12:00"), b)
	assert.False(t, state.Active)
}

func TestEvaluateSession_ProgressClamped(t *testing.T) {
	b := sessionAt("2025-04-12", "18:00", 1, StatusActive)

	state := EvaluateSession(clock(t, "2025-04-12 18:30"), b)
	assert.True(t, state.Active)
	assert.InDelta(t, 50, state.Progress, 0.1)
}
