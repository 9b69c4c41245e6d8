package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/delve/internal/game/level"
	"github.com/cory-johannsen/delve/internal/game/turn"
	"github.com/cory-johannsen/delve/internal/game/world"
)

func loadSession(t *testing.T, source string) *Session {
	t.Helper()
	grid, player, err := level.Load(strings.NewReader(source))
	require.NoError(t, err)
	return New(grid, player, nil)
}

func TestSession_EscapeFlow(t *testing.T) {
	// Collect the treasure, then walk through the exit.
	s := loadSession(t, `3 3
1 1
. . .
. . *
. . >
`)
	assert.Equal(t, StatusActive, s.Status())
	assert.NotEmpty(t, s.ID())

	round, err := s.Advance(turn.KeyRight)
	require.NoError(t, err)
	assert.Equal(t, turn.CollectedTreasure, round.Outcome)
	assert.Equal(t, 1, s.Player().Treasure)

	round, err = s.Advance(turn.KeyDown)
	require.NoError(t, err)
	assert.Equal(t, turn.Escaped, round.Outcome)
	assert.Equal(t, StatusEscaped, s.Status())
	assert.Equal(t, 2, s.Rounds())
}

func TestSession_ExitLockedWithoutTreasure(t *testing.T) {
	s := loadSession(t, `2 2
0 0
. .
. >
`)

	round, err := s.Advance(turn.KeyDown)
	require.NoError(t, err)
	assert.Equal(t, turn.Moved, round.Outcome)

	round, err = s.Advance(turn.KeyRight)
	require.NoError(t, err)
	assert.Equal(t, turn.Stayed, round.Outcome)
	assert.Equal(t, StatusActive, s.Status())
}

func TestSession_DoorGrowsGrid(t *testing.T) {
	s := loadSession(t, `2 2
0 0
. +
. .
`)

	round, err := s.Advance(turn.KeyRight)
	require.NoError(t, err)
	assert.Equal(t, turn.LeftRoom, round.Outcome)
	assert.True(t, round.Resized)

	assert.Equal(t, 4, s.Grid().Rows())
	assert.Equal(t, 4, s.Grid().Cols())
	assert.Equal(t, 1, s.Grid().Count(world.TilePlayer))
	assert.Equal(t, 0, s.Player().Row)
	assert.Equal(t, 1, s.Player().Col)
}

func TestSession_MonsterCaptureEndsSession(t *testing.T) {
	// The monster is two cells away with clear line of sight: one stay move
	// brings it adjacent, the next one captures.
	s := loadSession(t, `1 4
0 0
. . M >
`)

	round, err := s.Advance(turn.KeyStay)
	require.NoError(t, err)
	assert.False(t, round.Captured)

	round, err = s.Advance(turn.KeyStay)
	require.NoError(t, err)
	assert.True(t, round.Captured)
	assert.Equal(t, StatusCaptured, s.Status())
}

func TestSession_AdvanceAfterEndIsNoOp(t *testing.T) {
	s := loadSession(t, `1 4
0 0
. . M >
`)
	_, err := s.Advance(turn.KeyStay)
	require.NoError(t, err)
	_, err = s.Advance(turn.KeyStay)
	require.NoError(t, err)
	require.Equal(t, StatusCaptured, s.Status())

	rounds := s.Rounds()
	round, err := s.Advance(turn.KeyLeft)
	require.NoError(t, err)
	assert.Equal(t, Round{}, round)
	assert.Equal(t, rounds, s.Rounds())
}

func TestSession_UnknownInputIsAStay(t *testing.T) {
	s := loadSession(t, `2 2
0 0
. .
. +
`)

	round, err := s.Advance('z')
	require.NoError(t, err)
	assert.Equal(t, turn.Stayed, round.Outcome)
	assert.Equal(t, 0, s.Player().Row)
	assert.Equal(t, 0, s.Player().Col)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "active", StatusActive.String())
	assert.Equal(t, "escaped", StatusEscaped.String())
	assert.Equal(t, "captured", StatusCaptured.String())
}
