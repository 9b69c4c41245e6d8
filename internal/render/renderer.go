// Package render formats the dungeon grid as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/cory-johannsen/delve/internal/game/world"
)

// tileStyles maps tiles to their display color. Tiles without an entry
// render uncolored.
var tileStyles = map[world.Tile]color.Style{
	world.TilePlayer:   {color.FgGreen, color.OpBold},
	world.TileMonster:  {color.FgRed, color.OpBold},
	world.TileTreasure: {color.FgYellow, color.OpBold},
	world.TileAmulet:   {color.FgMagenta},
	world.TileDoor:     {color.FgCyan},
	world.TileExit:     {color.FgCyan, color.OpBold},
	world.TilePillar:   {color.FgGray},
}

// Renderer turns a grid plus player state into a printable frame.
type Renderer struct {
	colored bool
}

// New creates a Renderer. With colored false the output is plain glyphs,
// for dumb terminals and tests.
func New(colored bool) *Renderer {
	return &Renderer{colored: colored}
}

// Frame renders the grid, one row per line, followed by a status line with
// the treasure count and round number.
func (r *Renderer) Frame(g *world.Grid, p world.Player, round int) string {
	var b strings.Builder
	b.WriteString(r.Grid(g))
	fmt.Fprintf(&b, "treasure: %d  round: %d\n", p.Treasure, round)
	return b.String()
}

// Grid renders just the tile field.
func (r *Renderer) Grid(g *world.Grid) string {
	var b strings.Builder
	rows := g.Rows()
	for row := 0; row < rows; row++ {
		for col := 0; col < g.Cols(); col++ {
			tile, _ := g.At(row, col)
			b.WriteString(r.glyph(tile))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) glyph(t world.Tile) string {
	s := string(t.Glyph())
	if !r.colored {
		return s
	}
	style, ok := tileStyles[t]
	if !ok {
		return s
	}
	return style.Sprint(s)
}
