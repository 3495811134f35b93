// Package gridmap implements loading and querying of textual terrain grids.
//
// Parsing mirrors the header-then-body layout described in doc.go: header
// tokens are whitespace/newline-separated, so the height and width fields may
// legitimately span lines; the tile body is a stream of single characters
// validated against the mapping table one token at a time.
package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"unicode"
)

// Load parses a map source from r and returns a fully-validated GridMap.
// The source argument records where the data came from (a file path, URL,
// or any caller-chosen label) and is reported by SourceLocation.
//
// Returns ErrHeader, ErrDimension, ErrTileCount or ErrTileChar on malformed
// input; any other error is an underlying read failure. On error, no
// partially-populated GridMap is returned.
//
// Complexity: O(W×H) time and memory.
func Load(r io.Reader, source string) (*GridMap, error) {
	br := bufio.NewReader(r)

	// Header, field by field, failing fast on the first missing token.
	if err := discardLine(br); err != nil {
		return nil, fmt.Errorf("%w: missing type line", ErrHeader)
	}
	height, err := readDimension(br, "height")
	if err != nil {
		return nil, err
	}
	width, err := readDimension(br, "width")
	if err != nil {
		return nil, err
	}
	// Remainder of the width line, then one further separator line.
	if err = discardLine(br); err != nil {
		return nil, fmt.Errorf("%w: truncated after width field", ErrHeader)
	}
	if err = discardLine(br); err != nil {
		return nil, fmt.Errorf("%w: missing separator line", ErrHeader)
	}

	// Guard the cell count before allocating: both dimensions fit in an int,
	// but their product may not.
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %d×%d cells exceed addressable range", ErrDimension, width, height)
	}
	count := width * height

	// Tile body: single characters, whitespace-separated, exactly count of them.
	tiles := make([]TerrainKind, 0, count)
	for {
		c, _, rerr := br.ReadRune()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("gridmap: reading tiles: %w", rerr)
		}
		if unicode.IsSpace(c) {
			continue
		}
		kind, perr := ParseTerrain(c)
		if perr != nil {
			return nil, perr
		}
		if len(tiles) == count {
			return nil, fmt.Errorf("%w: more than %d tiles supplied", ErrTileCount, count)
		}
		tiles = append(tiles, kind)
	}
	if len(tiles) != count {
		return nil, fmt.Errorf("%w: want %d tiles, got %d", ErrTileCount, count, len(tiles))
	}

	return &GridMap{width: width, height: height, tiles: tiles, source: source}, nil
}

// LoadFile opens path and parses it via Load, recording path as the
// source location.
func LoadFile(path string) (*GridMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: open map file: %w", err)
	}
	defer f.Close()

	return Load(f, path)
}

// Width returns the number of tiles per row.
func (m *GridMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *GridMap) Height() int { return m.height }

// CellCount returns the total number of tiles (width*height).
func (m *GridMap) CellCount() int { return len(m.tiles) }

// SourceLocation returns the source label the map was loaded with.
func (m *GridMap) SourceLocation() string { return m.source }

// InBounds reports whether (x,y) lies strictly within the grid.
// Complexity: O(1).
func (m *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index maps (x,y) to its row-major index: x + y*width.
// The coordinate must be in bounds; Index does not validate.
func (m *GridMap) Index(x, y int) int {
	return x + y*m.width
}

// Coordinate converts a row-major index back to (x,y).
func (m *GridMap) Coordinate(index int) (x, y int) {
	return index % m.width, index / m.width
}

// Tile returns the terrain kind at (x,y), or ErrOutOfBounds if the
// coordinate lies outside the grid.
// Complexity: O(1).
func (m *GridMap) Tile(x, y int) (TerrainKind, error) {
	if !m.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, x, y, m.width, m.height)
	}

	return m.tiles[m.Index(x, y)], nil
}

// TileAt returns the terrain kind at the given row-major index, or
// ErrOutOfBounds if the index is outside [0, CellCount).
// Complexity: O(1).
func (m *GridMap) TileAt(index int) (TerrainKind, error) {
	if index < 0 || index >= len(m.tiles) {
		return 0, fmt.Errorf("%w: index %d of %d cells", ErrOutOfBounds, index, len(m.tiles))
	}

	return m.tiles[index], nil
}

// discardLine consumes input up to and including the next newline.
// It fails only when the reader is already exhausted.
func discardLine(br *bufio.Reader) error {
	line, err := br.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		return nil
	}

	return err
}

// readWord skips leading whitespace (including newlines) and returns the
// next run of non-space characters. The whitespace rune that terminates the
// word is not consumed.
func readWord(br *bufio.Reader) (string, error) {
	var word []rune
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			if len(word) > 0 {
				return string(word), nil
			}

			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(c) {
			if len(word) > 0 {
				// Leave the terminator in the stream: the remainder of the
				// value's line must still be visible to discardLine.
				_ = br.UnreadRune()
				return string(word), nil
			}
			continue
		}
		word = append(word, c)
	}
}

// readDimension consumes a "<label> <value>" header field and validates the
// value: it must parse as an unsigned integer, be non-zero, and lie strictly
// below the maximum int value.
func readDimension(br *bufio.Reader, field string) (int, error) {
	if _, err := readWord(br); err != nil {
		return 0, fmt.Errorf("%w: missing %s label", ErrHeader, field)
	}
	tok, err := readWord(br)
	if err != nil {
		return 0, fmt.Errorf("%w: missing %s value", ErrHeader, field)
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s value %q is not numeric", ErrHeader, field, tok)
	}
	if v == 0 || v >= math.MaxInt {
		return 0, fmt.Errorf("%w: %s=%d", ErrDimension, field, v)
	}

	return int(v), nil
}
