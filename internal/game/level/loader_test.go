package level

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/delve/internal/game/world"
)

const validLevel = `3 4
1 1
. . . #
. . * +
M . . >
`

func TestLoad_Valid(t *testing.T) {
	grid, player, err := Load(strings.NewReader(validLevel))
	require.NoError(t, err)

	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 4, grid.Cols())
	assert.Equal(t, 1, player.Row)
	assert.Equal(t, 1, player.Col)
	assert.Equal(t, 0, player.Treasure)

	assert.Equal(t, 1, grid.Count(world.TilePlayer))
	tile, ok := grid.At(1, 1)
	assert.True(t, ok)
	assert.Equal(t, world.TilePlayer, tile)

	tile, _ = grid.At(0, 3)
	assert.Equal(t, world.TilePillar, tile)
	tile, _ = grid.At(1, 2)
	assert.Equal(t, world.TileTreasure, tile)
	tile, _ = grid.At(1, 3)
	assert.Equal(t, world.TileDoor, tile)
	tile, _ = grid.At(2, 0)
	assert.Equal(t, world.TileMonster, tile)
	tile, _ = grid.At(2, 3)
	assert.Equal(t, world.TileExit, tile)
}

func TestLoad_StartCellTokenDiscarded(t *testing.T) {
	// The start cell's token is consumed but never validated; even a glyph
	// outside the alphabet is accepted there.
	grid, _, err := Load(strings.NewReader("2 2 0 0 x . . >"))
	require.NoError(t, err)

	tile, _ := grid.At(0, 0)
	assert.Equal(t, world.TilePlayer, tile)
}

func TestLoad_TilesWithoutSpacing(t *testing.T) {
	// Glyphs are single characters; runs without separating whitespace are
	// still individual tiles.
	grid, _, err := Load(strings.NewReader("2 2 0 0\n..\n.>"))
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Count(world.TileExit))
}

func TestLoad_Failures(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty source", "", ErrMalformedHeader},
		{"missing cols", "3", ErrMalformedHeader},
		{"non-numeric rows", "x 3 0 0", ErrMalformedHeader},
		{"non-numeric cols", "3 x 0 0", ErrMalformedHeader},
		{"missing start row", "2 2", ErrMalformedHeader},
		{"non-numeric start col", "2 2 0 x", ErrMalformedHeader},
		{"degenerate 1x1", "1 1 0 0 .", ErrDegenerateLevel},
		{"degenerate zero rows", "0 5 0 0", ErrDegenerateLevel},
		{"degenerate negative product", "-2 3 0 0", ErrDegenerateLevel},
		{"bad dimensions", "-2 -3 0 0", world.ErrBadDimensions},
		{"overflow", "2147483647 2147483647 0 0", world.ErrDimensionOverflow},
		{"start row too large", "2 2 2 0 . . . >", ErrStartOutOfBounds},
		{"start col negative", "2 2 0 -1 . . . >", ErrStartOutOfBounds},
		{"too few tiles", "2 2 0 0 . . .", ErrExhaustedInput},
		{"invalid tile", "2 2 0 0 . x . >", ErrInvalidTile},
		{"player glyph is not a file token", "2 2 0 0 . P . >", ErrInvalidTile},
		{"trailing tile", "2 2 0 0 . . . > .", ErrTrailingData},
		{"trailing junk", "2 2 0 0 . . . > extra", ErrTrailingData},
		{"no door or exit", "2 2 0 0 . . . .", ErrMissingExitOrDoor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, _, err := Load(strings.NewReader(tc.input))
			assert.Nil(t, grid)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_DoorAloneSatisfiesWayOut(t *testing.T) {
	_, _, err := Load(strings.NewReader("2 2 0 0 . . . +"))
	assert.NoError(t, err)
}

func TestLoadFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.lvl")
	require.NoError(t, os.WriteFile(path, []byte(validLevel), 0o644))

	grid, player, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 1, player.Row)
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.lvl"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadFile_WrapsLoaderFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lvl")
	require.NoError(t, os.WriteFile(path, []byte("1 1 0 0 ."), 0o644))

	_, _, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrDegenerateLevel)
}
