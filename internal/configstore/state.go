package configstore

import (
	"sync"

	"accreditation-gateway/internal/models"
)

// State holds the current configuration snapshot. Readers get copies;
// writers replace the whole document. No conflict detection exists across
// concurrent admin sessions: the last replace wins, a documented limitation.
type State struct {
	mu      sync.RWMutex
	current models.AppConfig
	subs    []func(models.AppConfig)
}

func NewState(cfg *models.AppConfig) *State {
	return &State{current: *cfg}
}

// Snapshot returns a copy of the current configuration.
func (s *State) Snapshot() models.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps in a new configuration wholesale and notifies subscribers.
func (s *State) Replace(cfg models.AppConfig) {
	s.mu.Lock()
	cfg.ID = models.ConfigDocID
	s.current = cfg
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cfg)
	}
}

// Subscribe registers fn to run after every Replace.
func (s *State) Subscribe(fn func(models.AppConfig)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
