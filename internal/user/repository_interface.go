package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpsertProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*Profile, error)
}
