package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Logananthan283/Veyil-Gaming/internal/booking"
	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
)

func TestWatcherSweep_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	database := setupTestDB(t)
	defer database.Close()

	cleanDatabase(t, database)
	seedCatalog(t, database)

	repo := booking.NewRepository(database)
	service := booking.NewService(repo, catalog.NewRepository(database), nil)
	ctx := context.Background()

	// a session dated well in the past is expired on any clock
	created, err := service.Create(ctx, &booking.BookingRequest{
		PlayerName: "Arun",
		Mobile:     "9876543210",
		Place:      "Madurai",
		Console:    "PS5",
		Players:    2,
		Hours:      1,
		StartTime:  "10:00",
		Date:       "2020-01-01",
	})
	require.NoError(t, err)

	n, err := service.CompleteExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	swept, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "completed", swept.Status)

	// sweep again: nothing left to promote
	n, err = service.CompleteExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
