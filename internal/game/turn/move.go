package turn

import "github.com/cory-johannsen/delve/internal/game/world"

// Outcome is the result of one attempted player move.
type Outcome int

const (
	Stayed Outcome = iota
	Moved
	CollectedTreasure
	CollectedAmulet
	LeftRoom
	Escaped
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Stayed:
		return "stayed"
	case Moved:
		return "moved"
	case CollectedTreasure:
		return "collected treasure"
	case CollectedAmulet:
		return "collected amulet"
	case LeftRoom:
		return "left room"
	case Escaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Move resolves the player's attempt to step onto (nextRow, nextCol).
//
// Rules are checked in order; the first match wins:
//  1. out of bounds                        -> Stayed
//  2. monster or pillar                    -> Stayed (even on an exit cell)
//  3. exit without treasure                -> Stayed (the exit is locked)
//  4. exit with treasure                   -> Escaped
//  5. door                                 -> LeftRoom
//  6. treasure (increments the inventory)  -> CollectedTreasure
//  7. amulet                               -> CollectedAmulet
//  8. open ground                          -> Moved
//
// Precondition: grid and player must be a consistent pair (player at the
// unique TilePlayer cell).
// Postcondition: On any non-Stayed outcome the player occupies the target
// cell, the old cell is TileOpen, and the pair is still consistent. A Stayed
// outcome mutates nothing.
func Move(g *world.Grid, p *world.Player, nextRow, nextCol int) Outcome {
	target, ok := g.At(nextRow, nextCol)
	if !ok {
		return Stayed
	}
	if target == world.TileMonster || target == world.TilePillar {
		return Stayed
	}
	if target == world.TileExit && p.Treasure == 0 {
		return Stayed
	}

	step := func() {
		g.Set(p.Row, p.Col, world.TileOpen)
		g.Set(nextRow, nextCol, world.TilePlayer)
		p.Row = nextRow
		p.Col = nextCol
	}

	switch target {
	case world.TileExit:
		step()
		return Escaped
	case world.TileDoor:
		step()
		return LeftRoom
	case world.TileTreasure:
		p.Treasure++
		step()
		return CollectedTreasure
	case world.TileAmulet:
		step()
		return CollectedAmulet
	case world.TileOpen:
		step()
		return Moved
	default:
		// The player's own cell (a stay move) is the only tile left.
		return Stayed
	}
}
