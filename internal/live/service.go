// Package live renders the floor view: which consoles are occupied right
// now, by whom, and how long each session has left.
package live

import (
	"context"
	"time"

	"github.com/Logananthan283/Veyil-Gaming/internal/booking"
	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
	"github.com/Logananthan283/Veyil-Gaming/internal/timeutil"
)

type Session struct {
	BookingID    string  `json:"booking_id"`
	PlayerName   string  `json:"playername"`
	Players      int     `json:"players"`
	StartDisplay string  `json:"start_display"`
	EndDisplay   string  `json:"end_display"`
	MinutesLeft  int     `json:"minutes_left"`
	Progress     float64 `json:"progress"`
}

type ConsoleView struct {
	Console  string   `json:"console"`
	Occupied bool     `json:"occupied"`
	Session  *Session `json:"session,omitempty"`
}

type Overview struct {
	Consoles  []ConsoleView `json:"consoles"`
	Total     int           `json:"total"`
	Occupied  int           `json:"occupied"`
	Available int           `json:"available"`
}

type Service struct {
	consoles catalog.Repository
	bookings booking.Repository
	now      func() time.Time
}

func NewService(consoles catalog.Repository, bookings booking.Repository) *Service {
	return &Service{consoles: consoles, bookings: bookings, now: time.Now}
}

// Overview maps today's running sessions onto the active console list. A
// console with more than one running session shows the one ending soonest;
// overlapping bookings on one console are an operator mistake the floor
// view cannot resolve.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	consoles, err := s.consoles.GetConsoles(ctx, true)
	if err != nil {
		return nil, err
	}
	active, err := s.bookings.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	running := make(map[string]*Session, len(active))
	for i := range active {
		b := &active[i]
		if b.Date != today {
			continue
		}
		state := booking.EvaluateSession(now, b)
		if !state.Active {
			continue
		}
		if existing, ok := running[b.Console]; ok && existing.MinutesLeft <= state.MinutesLeft {
			continue
		}
		running[b.Console] = &Session{
			BookingID:    b.ID,
			PlayerName:   b.PlayerName,
			Players:      b.Players,
			StartDisplay: timeutil.Display12h(b.StartTime),
			EndDisplay:   timeutil.Display12h(state.EndTime),
			MinutesLeft:  state.MinutesLeft,
			Progress:     state.Progress,
		}
	}

	overview := &Overview{Total: len(consoles)}
	for _, console := range consoles {
		view := ConsoleView{Console: console.Name}
		if session, ok := running[console.Name]; ok {
			view.Occupied = true
			view.Session = session
			overview.Occupied++
		}
		overview.Consoles = append(overview.Consoles, view)
	}
	overview.Available = overview.Total - overview.Occupied
	return overview, nil
}
