package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
	"github.com/Logananthan283/Veyil-Gaming/internal/logger"
	"github.com/Logananthan283/Veyil-Gaming/internal/metrics"
	"github.com/Logananthan283/Veyil-Gaming/internal/pricing"
	"github.com/Logananthan283/Veyil-Gaming/internal/timeutil"
)

// Notifier delivers booking events to the admin. Delivery is queued and best
// effort; a failure never fails the booking operation itself.
type Notifier interface {
	BookingCreated(ctx context.Context, b *Booking) error
	SessionsCompleted(ctx context.Context, bookings []Booking) error
}

type Service struct {
	repo     Repository
	catalog  catalog.Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, catalogRepo catalog.Repository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalogRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// price loads the active rate table and menu and computes the cost of the
// given draft. An unmatched console and player pair prices at zero; it is
// counted but not rejected, so the operator can still record the session.
func (s *Service) price(ctx context.Context, console string, players int, hours float64, itemIDs []int, discount float64) (pricing.Quote, error) {
	rates, err := s.catalog.GetRates(ctx, true)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("failed to load rates: %w", err)
	}
	menu, err := s.catalog.GetMenuItems(ctx, true)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("failed to load menu: %w", err)
	}
	if !pricing.HasRate(rates, console, players) {
		metrics.RecordUnpricedSession(console)
		logger.Infof("no rate configured for console=%s players=%d", console, players)
	}
	return pricing.Compute(pricing.Input{
		Console:       console,
		Players:       players,
		DurationHours: hours,
		Rates:         rates,
		SelectedItems: itemIDs,
		Menu:          menu,
		Discount:      discount,
	}), nil
}

func (s *Service) Create(ctx context.Context, req *BookingRequest) (*Booking, error) {
	extras, err := Validate(req)
	if err != nil {
		return nil, err
	}
	quote, err := s.price(ctx, req.Console, req.Players, req.Hours, req.MenuItemIDs, req.Discount)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		PlayerName:        req.PlayerName,
		Mobile:            req.Mobile,
		Place:             req.Place,
		Console:           req.Console,
		Players:           req.Players,
		Hours:             req.Hours,
		StartTime:         req.StartTime,
		Date:              req.Date,
		FinalAmount:       quote.RawTotal,
		Discount:          req.Discount,
		AdditionalPlayers: extras,
		MenuItemIDs:       IntList(req.MenuItemIDs),
		PaymentMode:       FormatPaymentMode(req.PaymentMethod, req.CashAmount, quote.Total),
		Status:            StatusActive,
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	metrics.RecordBooking(req.PaymentMethod)
	metrics.RecordRevenue(quote.Total)

	if s.notifier != nil {
		if err := s.notifier.BookingCreated(ctx, created); err != nil {
			logger.Errorf("failed to queue booking notification: %v", err)
		}
	}
	return created, nil
}

// Update replaces a booking's fields and reprices it from the current rate
// table. The stored status is preserved; editing a completed booking never
// reactivates its session.
func (s *Service) Update(ctx context.Context, id string, req *BookingRequest) (*Booking, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	extras, err := Validate(req)
	if err != nil {
		return nil, err
	}
	quote, err := s.price(ctx, req.Console, req.Players, req.Hours, req.MenuItemIDs, req.Discount)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		ID:                id,
		PlayerName:        req.PlayerName,
		Mobile:            req.Mobile,
		Place:             req.Place,
		Console:           req.Console,
		Players:           req.Players,
		Hours:             req.Hours,
		StartTime:         req.StartTime,
		Date:              req.Date,
		FinalAmount:       quote.RawTotal,
		Discount:          req.Discount,
		AdditionalPlayers: extras,
		MenuItemIDs:       IntList(req.MenuItemIDs),
		PaymentMode:       FormatPaymentMode(req.PaymentMethod, req.CashAmount, quote.Total),
		Status:            existing.Status,
	}
	return s.repo.Update(ctx, b)
}

func (s *Service) Get(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// List sweeps expired sessions first so the returned rows carry fresh
// statuses, then applies the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Booking, error) {
	if _, err := s.CompleteExpired(ctx); err != nil {
		logger.Errorf("failed to sweep expired sessions: %v", err)
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Complete closes a session by hand, ahead of its scheduled end.
func (s *Service) Complete(ctx context.Context, id string) (*Booking, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.repo.MarkCompleted(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Quote prices a booking draft without persisting anything. When the request
// carries an explicit end time the duration is derived from it, otherwise
// the end time is derived from the requested hours.
func (s *Service) Quote(ctx context.Context, req *QuoteRequest) (*QuotePreview, error) {
	hours := req.Hours
	endTime := req.EndTime
	if endTime != "" {
		h, err := timeutil.ElapsedHours(req.StartTime, endTime)
		if err != nil {
			return nil, err
		}
		hours = h
	} else {
		e, err := timeutil.AddHours(req.StartTime, hours)
		if err != nil {
			return nil, err
		}
		endTime = e
	}

	quote, err := s.price(ctx, req.Console, req.Players, hours, req.MenuItemIDs, req.Discount)
	if err != nil {
		return nil, err
	}
	hourCatalog, err := s.catalog.GetHours(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load hours: %w", err)
	}

	return &QuotePreview{
		Hours:        hours,
		EndTime:      endTime,
		StartDisplay: timeutil.Display12h(req.StartTime),
		EndDisplay:   timeutil.Display12h(endTime),
		SliderIndex:  catalog.SnapIndex(hours, hourCatalog),
		ConsoleCost:  quote.ConsoleCost,
		AddOnCost:    quote.AddOnCost,
		Total:        quote.Total,
	}, nil
}

// CompleteExpired sweeps all active bookings and promotes the ones whose
// session has run out. It returns how many were promoted. Individual
// failures are logged and skipped so one bad row cannot stall the sweep.
func (s *Service) CompleteExpired(ctx context.Context) (int, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	now := s.now()

	var completed []Booking
	for i := range active {
		state := EvaluateSession(now, &active[i])
		if state.Active {
			continue
		}
		changed, err := s.repo.MarkCompleted(ctx, active[i].ID)
		if err != nil {
			logger.Errorf("failed to auto-complete booking %s: %v", active[i].ID, err)
			continue
		}
		if changed {
			completed = append(completed, active[i])
		}
	}

	if len(completed) > 0 {
		metrics.RecordAutoCompleted(len(completed))
		logger.Infof("auto-completed %d expired sessions", len(completed))
		if s.notifier != nil {
			if err := s.notifier.SessionsCompleted(ctx, completed); err != nil {
				logger.Errorf("failed to queue completion notification: %v", err)
			}
		}
	}
	return len(completed), nil
}
