package booking

import "context"

// ListFilter narrows a booking listing. Zero values mean no filtering; a
// Limit of 0 returns everything.
type ListFilter struct {
	Search string
	Status string
	Date   string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) (*Booking, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Booking, error)
	ListActive(ctx context.Context) ([]Booking, error)
	// MarkCompleted promotes an active booking to completed. It reports
	// whether a row actually changed; promoting an already completed or
	// missing booking changes nothing and is not an error.
	MarkCompleted(ctx context.Context, id string) (bool, error)
}
