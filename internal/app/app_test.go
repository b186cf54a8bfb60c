package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raceoverlay/internal/config"
	"raceoverlay/internal/conn"
)

// newTestModel wires a manager that never dials so frames can be driven
// straight through Update.
func newTestModel() Model {
	m := New("localhost", 30333, 0, false, nil)
	m.shared.mgr = conn.NewManager(nil, func(tea.Msg) {}, nil)
	return m
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}
}

func TestPauseFreezesSnapshotWithoutDisconnecting(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(conn.RawFrameMsg{Data: []byte(`{"player":{"x":1,"z":2,"delta":1.5}}`)})
	m = next.(Model)
	require.NotNil(t, cmd, "accepted frame schedules a redraw")
	first := m.shared.mgr.Latest()
	require.NotNil(t, first)

	next, _ = m.Update(spaceKey())
	m = next.(Model)
	require.True(t, m.paused)

	next, cmd = m.Update(conn.RawFrameMsg{Data: []byte(`{"player":{"x":9,"z":9,"delta":9}}`)})
	m = next.(Model)
	assert.Nil(t, cmd, "paused frames do not schedule redraws")
	assert.Same(t, first, m.shared.mgr.Latest(), "paused frames never touch the snapshot")

	next, _ = m.Update(spaceKey())
	m = next.(Model)
	require.False(t, m.paused)

	next, cmd = m.Update(conn.RawFrameMsg{Data: []byte(`{"player":{"x":9,"z":9,"delta":9}}`)})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.NotSame(t, first, m.shared.mgr.Latest(), "resuming accepts frames again")
}

func TestBannerGoesStaleWhilePaused(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(conn.RawFrameMsg{Data: []byte(`{"player":{"x":1,"z":2}}`)})
	m = next.(Model)
	next, _ = m.Update(spaceKey())
	m = next.(Model)
	base := time.Now()

	assert.Equal(t, "", m.banner(base), "fresh snapshot renders live widgets")
	assert.Equal(t, "telemetry paused", m.banner(base.Add(config.StaleAfter+time.Second)))
}

func TestNewHonoursFrameRate(t *testing.T) {
	m := New("localhost", 30333, 10, false, nil)
	assert.Equal(t, time.Second/10, m.shared.sched.interval)

	m = New("localhost", 30333, 0, false, nil)
	assert.Equal(t, time.Second/time.Duration(config.TargetFPS), m.shared.sched.interval)
}
