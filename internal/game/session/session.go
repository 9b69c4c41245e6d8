// Package session drives one playthrough of a level: it owns the grid/player
// pair and advances the simulation one round per input.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/delve/internal/game/turn"
	"github.com/cory-johannsen/delve/internal/game/world"
)

// Status is the lifecycle state of a session.
type Status int

const (
	// StatusActive means the session accepts further rounds.
	StatusActive Status = iota
	// StatusEscaped means the player left through the dungeon exit.
	StatusEscaped
	// StatusCaptured means a monster reached the player.
	StatusCaptured
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusEscaped:
		return "escaped"
	case StatusCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// Round reports what happened during one Advance call.
type Round struct {
	// Outcome is the player's movement result.
	Outcome turn.Outcome
	// Captured is true when a monster reached the player this round.
	Captured bool
	// Resized is true when leaving the room doubled the grid.
	Resized bool
}

// Session owns one grid/player pair for the duration of a playthrough.
// Not safe for concurrent use; the driver advances it one round at a time.
type Session struct {
	id     string
	grid   *world.Grid
	player world.Player
	status Status
	rounds int
	logger *zap.Logger
}

// New creates a session around a freshly loaded grid/player pair.
//
// Precondition: grid and player must be consistent (player at the unique
// TilePlayer cell). logger may be nil for a silent session.
func New(grid *world.Grid, player world.Player, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		id:     uuid.NewString(),
		grid:   grid,
		player: player,
		status: StatusActive,
		logger: logger,
	}
	s.logger.Info("session started",
		zap.String("session_id", s.id),
		zap.Int("rows", grid.Rows()),
		zap.Int("cols", grid.Cols()),
		zap.Int("start_row", player.Row),
		zap.Int("start_col", player.Col),
	)
	return s
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// Grid returns the session's current grid. The caller must not retain it
// across rounds: leaving a room replaces the grid wholesale.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player's current state.
func (s *Session) Player() world.Player { return s.player }

// Status returns the session lifecycle state.
func (s *Session) Status() Status { return s.status }

// Rounds returns the number of rounds advanced so far.
func (s *Session) Rounds() int { return s.rounds }

// Advance runs one full round: input to direction, player move, grid growth
// when a door is taken, then the monsters' turn. Once the session has left
// StatusActive, Advance is a no-op.
//
// Postcondition: Returns the round report, or an error when growing the
// grid failed (the session is unrecoverable afterwards: the grid is gone).
func (s *Session) Advance(input rune) (Round, error) {
	if s.status != StatusActive {
		return Round{}, nil
	}
	s.rounds++

	dRow, dCol := turn.Delta(input)
	outcome := turn.Move(s.grid, &s.player, s.player.Row+dRow, s.player.Col+dCol)

	var round Round
	round.Outcome = outcome

	switch outcome {
	case turn.Escaped:
		s.status = StatusEscaped
		s.logger.Info("player escaped",
			zap.String("session_id", s.id),
			zap.Int("rounds", s.rounds),
			zap.Int("treasure", s.player.Treasure),
		)
		return round, nil
	case turn.LeftRoom:
		bigger, err := s.grid.Resize()
		if err != nil {
			s.grid = nil
			return round, fmt.Errorf("growing dungeon after leaving room: %w", err)
		}
		s.grid = bigger
		round.Resized = true
	}

	if turn.MonsterTurn(s.grid, &s.player) {
		round.Captured = true
		s.status = StatusCaptured
		s.logger.Info("player captured",
			zap.String("session_id", s.id),
			zap.Int("rounds", s.rounds),
		)
	}

	s.logger.Debug("round advanced",
		zap.String("session_id", s.id),
		zap.Int("round", s.rounds),
		zap.String("input", string(input)),
		zap.String("outcome", outcome.String()),
		zap.Bool("captured", round.Captured),
		zap.Bool("resized", round.Resized),
	)
	return round, nil
}
