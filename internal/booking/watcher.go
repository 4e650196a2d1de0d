package booking

import (
	"context"
	"time"

	"github.com/Logananthan283/Veyil-Gaming/internal/logger"
)

// Watcher periodically sweeps expired sessions to completed. The sweep is
// idempotent, so overlapping runs or a restart mid-sweep are harmless.
type Watcher struct {
	service  *Service
	interval time.Duration
}

func NewWatcher(service *Service, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{service: service, interval: interval}
}

// Start runs the sweep loop until ctx is cancelled. One sweep runs
// immediately so sessions that expired while the server was down are closed
// at startup.
func (w *Watcher) Start(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("session watcher stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Watcher) sweep(ctx context.Context) {
	if _, err := w.service.CompleteExpired(ctx); err != nil {
		logger.Errorf("session sweep failed: %v", err)
	}
}
