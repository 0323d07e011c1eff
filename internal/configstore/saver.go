package configstore

import (
	"context"
	"sync"
	"time"

	"accreditation-gateway/internal/models"

	"go.uber.org/zap"
)

// persister is the write half of the Store, narrowed for tests.
type persister interface {
	Save(ctx context.Context, cfg *models.AppConfig) error
}

// Saver debounces configuration writes: each Schedule replaces the pending
// snapshot and restarts the quiet-period timer, so a burst of edits issues a
// single save carrying the last full snapshot. Save failures are logged and
// swallowed; the in-memory configuration is never rolled back.
type Saver struct {
	store   persister
	delay   time.Duration
	log     *zap.Logger
	mu      sync.Mutex
	timer   *time.Timer
	pending *models.AppConfig
}

func NewSaver(store persister, delay time.Duration, log *zap.Logger) *Saver {
	return &Saver{store: store, delay: delay, log: log}
}

// Schedule records cfg as the snapshot to persist, cancelling any earlier
// pending write. Last write wins.
func (s *Saver) Schedule(cfg models.AppConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &cfg
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flush)
}

// Stop cancels the timer and synchronously flushes any pending snapshot.
// Called on shutdown so the final edit is not lost.
func (s *Saver) Stop() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

func (s *Saver) flush() {
	s.mu.Lock()
	cfg := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if cfg == nil {
		return
	}
	if err := s.store.Save(context.Background(), cfg); err != nil {
		s.log.Error("config save failed", zap.Error(err))
		return
	}
	s.log.Debug("config saved")
}
