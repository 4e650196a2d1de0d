package booking

import (
	"time"

	"github.com/Logananthan283/Veyil-Gaming/internal/timeutil"
)

// SessionState is the evaluated position of a booking's session relative to
// a wall-clock instant. It is derived, never stored.
type SessionState struct {
	Active      bool    `json:"active"`
	MinutesLeft int     `json:"minutes_left"`
	Progress    float64 `json:"progress"`
	EndTime     string  `json:"endtime"`
}

// EvaluateSession computes the session state of b at now. A booking whose
// stored status is already completed is never reported active, regardless of
// the clock. Unparseable times yield an inactive state rather than an error;
// the watcher treats those sessions as expired.
func EvaluateSession(now time.Time, b *Booking) SessionState {
	end, err := timeutil.SessionEnd(b.Date, b.StartTime, b.Hours)
	if err != nil {
		return SessionState{}
	}
	state := SessionState{EndTime: end.Format("15:04")}
	if b.Status != StatusActive {
		return state
	}
	state.MinutesLeft = timeutil.MinutesRemaining(now, end)
	// MinutesLeft truncates to whole minutes for display; the session itself
	// runs until the end instant.
	state.Active = now.Before(end)
	if b.Hours > 0 {
		total := b.Hours * 60
		state.Progress = float64(state.MinutesLeft) / total * 100
		if state.Progress > 100 {
			state.Progress = 100
		}
	}
	return state
}
