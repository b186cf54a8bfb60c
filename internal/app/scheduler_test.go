package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerCoalescesRequests(t *testing.T) {
	s := NewScheduler(30)
	assert.False(t, s.Pending())

	// Three requests arrive before the frame callback runs; only the
	// newest token survives.
	require.NotNil(t, s.Request())
	require.NotNil(t, s.Request())
	require.NotNil(t, s.Request())
	assert.True(t, s.Pending())

	assert.False(t, s.Consume(1), "superseded request must not draw")
	assert.False(t, s.Consume(2), "superseded request must not draw")
	assert.True(t, s.Consume(3), "latest request draws")
	assert.False(t, s.Pending())
}

func TestSchedulerTokenDrawsOnce(t *testing.T) {
	s := NewScheduler(30)
	s.Request()
	assert.True(t, s.Consume(1))
	assert.False(t, s.Consume(1), "a token never draws twice")
}

func TestSchedulerNewRequestAfterDraw(t *testing.T) {
	s := NewScheduler(30)
	s.Request()
	require.True(t, s.Consume(1))

	s.Request()
	assert.True(t, s.Pending())
	assert.True(t, s.Consume(2))
}
