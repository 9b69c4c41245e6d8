package world

// Player is the adventurer's position and inventory. Row and Col always
// point at the unique TilePlayer cell of the grid the player is paired
// with; every operation that moves the player keeps the two in sync.
type Player struct {
	Row      int
	Col      int
	Treasure int
}
