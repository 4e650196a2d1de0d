package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
)

type fakeRepo struct {
	bookings  map[string]*Booking
	nextID    int
	completed []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*Booking{}}
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) (*Booking, error) {
	f.nextID++
	stored := *b
	stored.ID = string(rune('a' + f.nextID - 1))
	stored.CreatedAt = time.Now()
	f.bookings[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, b *Booking) (*Booking, error) {
	if _, ok := f.bookings[b.ID]; !ok {
		return nil, ErrBookingNotFound
	}
	stored := *b
	f.bookings[b.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ ListFilter) ([]Booking, error) {
	out := []Booking{}
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) ListActive(_ context.Context) ([]Booking, error) {
	out := []Booking{}
	for _, b := range f.bookings {
		if b.Status == StatusActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkCompleted(_ context.Context, id string) (bool, error) {
	b, ok := f.bookings[id]
	if !ok || b.Status != StatusActive {
		return false, nil
	}
	b.Status = StatusCompleted
	f.completed = append(f.completed, id)
	return true, nil
}

// fakeCatalog serves a fixed rate table, menu and hour list. The write and
// delete methods are never reached from the booking service.
type fakeCatalog struct {
	catalog.Repository
	rates []catalog.Rate
	menu  []catalog.MenuItem
	hours []catalog.Hour
}

func (f *fakeCatalog) GetRates(_ context.Context, _ bool) ([]catalog.Rate, error) {
	return f.rates, nil
}

func (f *fakeCatalog) GetMenuItems(_ context.Context, _ bool) ([]catalog.MenuItem, error) {
	return f.menu, nil
}

func (f *fakeCatalog) GetHours(_ context.Context, _ bool) ([]catalog.Hour, error) {
	return f.hours, nil
}

type fakeNotifier struct {
	created   int
	completed [][]Booking
}

func (f *fakeNotifier) BookingCreated(_ context.Context, _ *Booking) error {
	f.created++
	return nil
}

func (f *fakeNotifier) SessionsCompleted(_ context.Context, bookings []Booking) error {
	f.completed = append(f.completed, bookings)
	return nil
}

func newTestService(repo *fakeRepo, notifier Notifier) *Service {
	cat := &fakeCatalog{
		rates: []catalog.Rate{
			{ID: 1, Console: "PS5", Players: 2, Hours: 1, Price: 200},
		},
		menu: []catalog.MenuItem{
			{ID: 7, Name: "Coke", Price: 50},
		},
		hours: []catalog.Hour{
			{ID: 1, HourValue: 0.5}, {ID: 2, HourValue: 1},
			{ID: 3, HourValue: 1.5}, {ID: 4, HourValue: 2},
		},
	}
	return NewService(repo, cat, notifier)
}

func TestServiceCreate_PricesAndPersists(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	req := validRequest()
	req.Hours = 2.5
	req.MenuItemIDs = []int{7}
	req.Discount = 100

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 450.0, created.FinalAmount)
	assert.Equal(t, StatusActive, created.Status)
	assert.Equal(t, PaymentCash, created.PaymentMode)
	assert.Equal(t, 1, notifier.created)
}

func TestServiceCreate_MixedPaymentSplit(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	req := validRequest()
	req.Hours = 1
	req.PaymentMethod = PaymentMixed
	req.CashAmount = 120

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Mixed (C:120.00, U:80.00)", created.PaymentMode)
}

func TestServiceCreate_NoRateStillBooks(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	req := validRequest()
	req.Console = "Dreamcast"
	req.Hours = 1

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.FinalAmount)
}

func TestServiceCreate_ValidationRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	req := validRequest()
	req.Mobile = "12345"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, repo.bookings)
}

func TestServiceCreate_OverDiscountPersistsNegative(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	req := validRequest()
	req.Hours = 1
	req.Discount = 600

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, -400.0, created.FinalAmount)
}

func TestServiceUpdate_PreservesCompletedStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.Complete(context.Background(), created.ID)
	require.NoError(t, err)

	req := validRequest()
	req.PlayerName = "Renamed"
	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.PlayerName)
	assert.Equal(t, StatusCompleted, updated.Status)
}

func TestServiceComplete_NotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.Complete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestServiceQuote_FromHours(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeNotifier{})

	preview, err := svc.Quote(context.Background(), &QuoteRequest{
		Console:   "PS5",
		Players:   2,
		StartTime: "18:00",
		Hours:     1.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "19:30", preview.EndTime)
	assert.Equal(t, "06:00 PM", preview.StartDisplay)
	assert.Equal(t, "07:30 PM", preview.EndDisplay)
	assert.Equal(t, 2, preview.SliderIndex)
	assert.Equal(t, 300.0, preview.Total)
}

func TestServiceQuote_ManualEndTimeWins(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeNotifier{})

	preview, err := svc.Quote(context.Background(), &QuoteRequest{
		Console:   "PS5",
		Players:   2,
		StartTime: "22:00",
		Hours:     1,
		EndTime:   "02:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, preview.Hours)
	assert.Equal(t, 800.0, preview.Total)
}

func TestServiceQuote_SnapsToNearestCatalogHour(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeNotifier{})

	preview, err := svc.Quote(context.Background(), &QuoteRequest{
		Console:   "PS5",
		Players:   2,
		StartTime: "10:00",
		Hours:     1.2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, preview.SliderIndex)
	assert.Equal(t, 240.0, preview.Total)
}

func TestCompleteExpired_PromotesOnlyExpired(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)
	svc.now = func() time.Time {
		return time.Date(2025, 4, 12, 20, 0, 0, 0, time.Local)
	}

	expired := validRequest()
	expired.StartTime = "18:00"
	expired.Hours = 1.5
	running := validRequest()
	running.StartTime = "19:30"
	running.Hours = 2

	_, err := svc.Create(context.Background(), expired)
	require.NoError(t, err)
	kept, err := svc.Create(context.Background(), running)
	require.NoError(t, err)

	n, err := svc.CompleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, notifier.completed, 1)

	still, err := svc.Get(context.Background(), kept.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, still.Status)
}

func TestCompleteExpired_SecondSweepIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})
	svc.now = func() time.Time {
		return time.Date(2025, 4, 12, 23, 0, 0, 0, time.Local)
	}

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	n, err := svc.CompleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.CompleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
