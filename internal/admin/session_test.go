package admin

import (
	"testing"

	"accreditation-gateway/internal/configstore"
	"accreditation-gateway/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*Manager, *configstore.State) {
	cfg := models.DefaultConfig() // admin password "123456"
	state := configstore.NewState(cfg)
	return NewManager(state), state
}

func TestLogin_WrongPassword(t *testing.T) {
	m, _ := newTestManager()

	token, ok := m.Login("wrong")
	assert.False(t, ok)
	assert.Empty(t, token)
	assert.False(t, m.Valid(token), "session stays anonymous")
}

func TestLogin_CorrectPassword(t *testing.T) {
	m, _ := newTestManager()

	token, ok := m.Login("123456")
	require.True(t, ok)
	require.NotEmpty(t, token)
	assert.True(t, m.Valid(token))

	// Once authenticated, the gate stays open without re-prompting.
	assert.True(t, m.Valid(token))
}

func TestLogin_UnlimitedRetries(t *testing.T) {
	m, _ := newTestManager()

	for i := 0; i < 50; i++ {
		_, ok := m.Login("bad")
		assert.False(t, ok)
	}
	_, ok := m.Login("123456")
	assert.True(t, ok, "no lockout after repeated failures")
}

func TestLogin_UsesCurrentSnapshotPassword(t *testing.T) {
	m, state := newTestManager()

	edited := state.Snapshot()
	edited.AdminPassword = "rotated"
	state.Replace(edited)

	_, ok := m.Login("123456")
	assert.False(t, ok)
	_, ok = m.Login("rotated")
	assert.True(t, ok)
}

func TestValid_UnknownToken(t *testing.T) {
	m, _ := newTestManager()
	assert.False(t, m.Valid(""))
	assert.False(t, m.Valid("not-a-session"))
}
