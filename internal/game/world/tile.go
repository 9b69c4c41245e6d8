// Package world provides the dungeon grid: the tile alphabet, the 2D tile
// field, and the player state that is paired with it.
package world

// Tile is one cell value in the dungeon grid.
type Tile uint8

const (
	TileOpen Tile = iota
	TilePillar
	TileDoor
	TileExit
	TileTreasure
	TileAmulet
	TileMonster
	TilePlayer
)

// Glyph returns the single-character representation used in level files and
// rendered frames.
func (t Tile) Glyph() rune {
	switch t {
	case TileOpen:
		return '.'
	case TilePillar:
		return '#'
	case TileDoor:
		return '+'
	case TileExit:
		return '>'
	case TileTreasure:
		return '*'
	case TileAmulet:
		return '@'
	case TileMonster:
		return 'M'
	case TilePlayer:
		return 'P'
	default:
		return '?'
	}
}

// String returns a human-readable tile label.
func (t Tile) String() string {
	switch t {
	case TileOpen:
		return "open"
	case TilePillar:
		return "pillar"
	case TileDoor:
		return "door"
	case TileExit:
		return "exit"
	case TileTreasure:
		return "treasure"
	case TileAmulet:
		return "amulet"
	case TileMonster:
		return "monster"
	case TilePlayer:
		return "player"
	default:
		return "unknown"
	}
}

// ParseTile maps a level-file glyph to its tile. The player glyph is not a
// recognized file token: the loader writes TilePlayer at the declared start
// cell and discards whatever token the file holds there.
//
// Postcondition: Returns (tile, true) for a recognized glyph, or (TileOpen,
// false) otherwise.
func ParseTile(glyph rune) (Tile, bool) {
	switch glyph {
	case '.':
		return TileOpen, true
	case '#':
		return TilePillar, true
	case '+':
		return TileDoor, true
	case '>':
		return TileExit, true
	case '*':
		return TileTreasure, true
	case '@':
		return TileAmulet, true
	case 'M':
		return TileMonster, true
	default:
		return TileOpen, false
	}
}
