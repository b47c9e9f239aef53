package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groqchat/internal/models"
)

func TestManager_GetOrCreateIsStable(t *testing.T) {
	m := NewManager(time.Minute)
	defer m.Stop()

	a := m.GetOrCreate("id-a")
	assert.Same(t, a, m.GetOrCreate("id-a"))
	assert.Equal(t, 1, m.Len())
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(time.Minute)
	defer m.Stop()

	a := m.GetOrCreate("id-a")
	b := m.GetOrCreate("id-b")

	require.NoError(t, a.Apply(AppendMessage{Role: models.RoleUser, Content: "only in a"}))
	require.NoError(t, b.Apply(SetConfig{Model: "groq/compound-mini", Temperature: 0.2, MaxTokens: 64}))

	assert.Empty(t, b.History())
	assert.False(t, a.Configured())
	assert.Equal(t, 2, m.Len())
}

func TestManager_SweepDropsIdleSessions(t *testing.T) {
	m := NewManager(time.Minute)
	defer m.Stop()

	stale := m.GetOrCreate("stale")
	fresh := m.GetOrCreate("fresh")

	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	m.sweep()

	assert.Nil(t, m.Get("stale"))
	assert.Same(t, fresh, m.Get("fresh"))
	assert.Equal(t, 1, m.Len())
}
