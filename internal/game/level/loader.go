// Package level parses textual level descriptions into a validated grid and
// player start state.
//
// A level file is a stream of whitespace-delimited tokens: the header
// `rows cols startRow startCol`, followed by rows*cols single-character tile
// glyphs in row-major order. The glyph at the declared start cell is consumed
// but ignored; that cell always holds the player. The stream must end cleanly
// after the last tile.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/cory-johannsen/delve/internal/game/world"
)

// Loader failure classes. Each invalid input is rejected with exactly one of
// these (or a wrapped world allocation error), never a partially built grid.
var (
	// ErrMalformedHeader indicates a missing or non-numeric header token.
	ErrMalformedHeader = errors.New("level: malformed header")
	// ErrDegenerateLevel indicates rows*cols <= 1.
	ErrDegenerateLevel = errors.New("level: degenerate level")
	// ErrStartOutOfBounds indicates a start position outside the grid.
	ErrStartOutOfBounds = errors.New("level: start position out of bounds")
	// ErrExhaustedInput indicates fewer tile tokens than rows*cols.
	ErrExhaustedInput = errors.New("level: not enough tiles")
	// ErrInvalidTile indicates an unrecognized tile glyph.
	ErrInvalidTile = errors.New("level: invalid tile")
	// ErrTrailingData indicates tokens after the final tile.
	ErrTrailingData = errors.New("level: trailing data after tiles")
	// ErrMissingExitOrDoor indicates a level with no way out at all.
	ErrMissingExitOrDoor = errors.New("level: no exit or door tile")
)

// LoadFile reads and parses the level file at path.
//
// Postcondition: Returns a validated (grid, player) pair, or a non-nil error
// wrapping the underlying fs error or one of the loader failure classes.
func LoadFile(path string) (*world.Grid, world.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, world.Player{}, fmt.Errorf("opening level file %s: %w", path, err)
	}
	defer f.Close()
	grid, player, err := Load(f)
	if err != nil {
		return nil, world.Player{}, fmt.Errorf("loading level %s: %w", path, err)
	}
	return grid, player, nil
}

// Load parses a level description from r.
//
// Postcondition: On success the grid contains exactly one TilePlayer cell,
// at the returned player's coordinates. On failure no grid is returned and
// any grid allocated mid-parse has been released.
func Load(r io.Reader) (*world.Grid, world.Player, error) {
	br := bufio.NewReader(r)

	rows, err := readInt(br)
	if err != nil {
		return nil, world.Player{}, fmt.Errorf("reading row count: %w", err)
	}
	cols, err := readInt(br)
	if err != nil {
		return nil, world.Player{}, fmt.Errorf("reading column count: %w", err)
	}
	if degenerate(rows, cols) {
		return nil, world.Player{}, fmt.Errorf("%w: %dx%d", ErrDegenerateLevel, rows, cols)
	}

	grid, err := world.NewGrid(rows, cols)
	if err != nil {
		return nil, world.Player{}, fmt.Errorf("allocating level grid: %w", err)
	}
	fail := func(err error) (*world.Grid, world.Player, error) {
		grid.Release()
		return nil, world.Player{}, err
	}

	startRow, err := readInt(br)
	if err != nil {
		return fail(fmt.Errorf("reading start row: %w", err))
	}
	startCol, err := readInt(br)
	if err != nil {
		return fail(fmt.Errorf("reading start column: %w", err))
	}
	if startRow < 0 || startRow >= rows || startCol < 0 || startCol >= cols {
		return fail(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrStartOutOfBounds, startRow, startCol, rows, cols))
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			glyph, err := readGlyph(br)
			if errors.Is(err, io.EOF) {
				return fail(fmt.Errorf("%w: ended at cell (%d,%d)", ErrExhaustedInput, row, col))
			}
			if err != nil {
				return fail(fmt.Errorf("reading tile at (%d,%d): %w", row, col, err))
			}
			if row == startRow && col == startCol {
				// The start cell is the player no matter what the file says.
				grid.Set(row, col, world.TilePlayer)
				continue
			}
			tile, ok := world.ParseTile(glyph)
			if !ok {
				return fail(fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidTile, glyph, row, col))
			}
			grid.Set(row, col, tile)
		}
	}

	if glyph, err := readGlyph(br); err == nil {
		return fail(fmt.Errorf("%w: %q", ErrTrailingData, glyph))
	} else if !errors.Is(err, io.EOF) {
		return fail(fmt.Errorf("reading end of level: %w", err))
	}

	if grid.Count(world.TileDoor) == 0 && grid.Count(world.TileExit) == 0 {
		return fail(ErrMissingExitOrDoor)
	}

	return grid, world.Player{Row: startRow, Col: startCol}, nil
}

// degenerate reports whether rows*cols <= 1 without risking overflow in the
// product.
func degenerate(rows, cols int) bool {
	if rows <= 0 || cols <= 0 {
		// Zero or negative product; a negative*negative pair is left for the
		// allocator to reject.
		if rows < 0 && cols < 0 {
			return false
		}
		return true
	}
	return rows == 1 && cols == 1
}

// readInt skips whitespace and reads one whitespace-delimited integer token.
// A missing or non-numeric token is ErrMalformedHeader.
func readInt(br *bufio.Reader) (int, error) {
	if err := skipSpace(br); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrMalformedHeader
		}
		return 0, err
	}

	var token []rune
	for {
		r, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(r) {
			if err := br.UnreadRune(); err != nil {
				return 0, err
			}
			break
		}
		token = append(token, r)
	}

	n, err := strconv.Atoi(string(token))
	if err != nil {
		return 0, fmt.Errorf("%w: token %q", ErrMalformedHeader, string(token))
	}
	return n, nil
}

// readGlyph skips whitespace and reads a single non-space rune.
func readGlyph(br *bufio.Reader) (rune, error) {
	if err := skipSpace(br); err != nil {
		return 0, err
	}
	r, _, err := br.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

// skipSpace consumes runes up to the next non-space rune, leaving it unread.
func skipSpace(br *bufio.Reader) error {
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return br.UnreadRune()
		}
	}
}
