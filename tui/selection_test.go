package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionClampsAtTop(t *testing.T) {
	var s selection
	for i := 0; i < 10; i++ {
		s.up()
	}
	assert.Equal(t, 0, s.index)
}

func TestSelectionClampsAtBottom(t *testing.T) {
	var s selection
	for i := 0; i < 10; i++ {
		s.down(3)
	}
	assert.Equal(t, 2, s.index)
}

func TestSelectionEmpty(t *testing.T) {
	var s selection
	_, ok := s.current(0)
	assert.False(t, ok)

	// Moves against an empty store stay put.
	s.down(0)
	s.up()
	assert.Equal(t, 0, s.index)
}

func TestSelectionStaysInRange(t *testing.T) {
	const n = 5
	var s selection

	moves := []func(){
		func() { s.up() },
		func() { s.down(n) },
		func() { s.down(n) },
		func() { s.down(n) },
		func() { s.up() },
		func() { s.down(n) },
		func() { s.down(n) },
		func() { s.down(n) },
		func() { s.down(n) },
		func() { s.up() },
	}
	for _, move := range moves {
		move()
		idx, ok := s.current(n)
		require.True(t, ok)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
	}
}
