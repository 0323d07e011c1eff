// Package admin tracks authenticated admin sessions and gates access to the
// configuration editor.
package admin

import (
	"sync"

	"accreditation-gateway/internal/configstore"

	"github.com/google/uuid"
)

// Manager holds admin session tokens in memory only: sessions do not survive
// a restart and are not time-limited. The password check is a plaintext
// shared-secret comparison with no lockout or rate limiting, kept as-is by
// explicit decision and isolated in verifyPassword.
type Manager struct {
	state    *configstore.State
	mu       sync.Mutex
	sessions map[string]struct{}
}

func NewManager(state *configstore.State) *Manager {
	return &Manager{state: state, sessions: make(map[string]struct{})}
}

// verifyPassword is the single point a future hashing scheme would replace.
func verifyPassword(got, want string) bool {
	return got == want
}

// Login compares the password against the currently loaded configuration and
// mints a session token on success. Retries are unlimited.
func (m *Manager) Login(password string) (string, bool) {
	cfg := m.state.Snapshot()
	if !verifyPassword(password, cfg.AdminPassword) {
		return "", false
	}

	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = struct{}{}
	m.mu.Unlock()
	return token, true
}

// Valid reports whether token belongs to an authenticated session. Once
// authenticated, the editor opens without re-prompting for the rest of the
// session.
func (m *Manager) Valid(token string) bool {
	if token == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[token]
	return ok
}
