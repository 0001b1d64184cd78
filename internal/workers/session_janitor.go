package workers

import (
	"time"

	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/wizard"
)

// SessionJanitor periodically drops expired wizard sessions. Sessions
// are memory-only, so without the sweep an abandoned form would sit in
// the map forever.
type SessionJanitor struct {
	store    *wizard.Store
	interval time.Duration
	stop     chan struct{}
}

func NewSessionJanitor(store *wizard.Store, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Run blocks until Stop is called. Start it in its own goroutine.
func (j *SessionJanitor) Run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	logger.Info("wizard session janitor started", "interval", j.interval.String())

	for {
		select {
		case <-ticker.C:
			if removed := j.store.Sweep(); removed > 0 {
				logger.Info("expired wizard sessions removed",
					"removed", removed, "remaining", j.store.Len())
			}
		case <-j.stop:
			logger.Info("wizard session janitor stopped")
			return
		}
	}
}

func (j *SessionJanitor) Stop() {
	close(j.stop)
}
