package catalog

import "context"

type Repository interface {
	CreateConsole(ctx context.Context, name, status string) (*Console, error)
	GetConsoles(ctx context.Context, activeOnly bool) ([]Console, error)
	DeleteConsole(ctx context.Context, id int) error

	CreateHour(ctx context.Context, value float64, label string) (*Hour, error)
	GetHours(ctx context.Context, activeOnly bool) ([]Hour, error)
	DeleteHour(ctx context.Context, id int) error

	CreatePlayerCount(ctx context.Context, count int) (*PlayerCount, error)
	GetPlayerCounts(ctx context.Context, activeOnly bool) ([]PlayerCount, error)
	DeletePlayerCount(ctx context.Context, id int) error

	CreateRate(ctx context.Context, req CreateRateRequest) (*Rate, error)
	GetRates(ctx context.Context, activeOnly bool) ([]Rate, error)
	DeleteRate(ctx context.Context, id int) error

	CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error)
	GetMenuItems(ctx context.Context, activeOnly bool) ([]MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}
