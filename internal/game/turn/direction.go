// Package turn implements one round of the simulation: translating input to
// a direction, resolving the player's move against tile semantics, and
// advancing monsters with line of sight to the player.
package turn

// Movement keys recognized by Delta.
const (
	KeyUp    = 'w'
	KeyLeft  = 'a'
	KeyDown  = 's'
	KeyRight = 'd'
	KeyStay  = 'e'
)

// Delta translates an input rune into a row/column delta. Unrecognized
// input is identical to KeyStay. Pure and total.
func Delta(input rune) (dRow, dCol int) {
	switch input {
	case KeyUp:
		return -1, 0
	case KeyDown:
		return 1, 0
	case KeyLeft:
		return 0, -1
	case KeyRight:
		return 0, 1
	default:
		return 0, 0
	}
}
