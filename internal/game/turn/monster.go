package turn

import "github.com/cory-johannsen/delve/internal/game/world"

// MonsterTurn advances every monster with line of sight to the player and
// reports whether one of them reached the player's cell.
//
// Each of the four cardinal rays from the player is scanned outward. A
// pillar ends the ray: nothing beyond it can see the player. Every monster
// encountered before a pillar steps one cell toward the player; the scan
// keeps going after a move, so several monsters on the same ray all advance
// in one call. A monster that was adjacent to the player captures them.
//
// All four rays run regardless of an earlier capture; the rays are disjoint
// outside the player's cell, so they cannot interfere with each other. On a
// capture the monster is written onto the player's cell.
//
// Precondition: grid and player must be a consistent pair.
func MonsterTurn(g *world.Grid, p *world.Player) bool {
	captured := false
	rays := []struct{ dRow, dCol int }{
		{-1, 0}, // up
		{1, 0},  // down
		{0, 1},  // right
		{0, -1}, // left
	}

	for _, ray := range rays {
		for i := 1; ; i++ {
			row := p.Row + ray.dRow*i
			col := p.Col + ray.dCol*i
			tile, ok := g.At(row, col)
			if !ok || tile == world.TilePillar {
				break
			}
			if tile != world.TileMonster {
				continue
			}
			g.Set(row, col, world.TileOpen)
			g.Set(row-ray.dRow, col-ray.dCol, world.TileMonster)
			if i == 1 {
				captured = true
			}
		}
	}

	return captured
}
