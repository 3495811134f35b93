// Package gridmap defines the terrain model and sentinel errors for the
// textual grid-map loader.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrHeader indicates a missing or non-numeric header token.
	ErrHeader = errors.New("gridmap: malformed map header")
	// ErrDimension indicates a zero or out-of-range width/height value.
	ErrDimension = errors.New("gridmap: width and height must be positive and below the maximum int value")
	// ErrTileCount indicates the number of tile tokens differs from width*height.
	ErrTileCount = errors.New("gridmap: tile count does not match width*height")
	// ErrTileChar indicates an unrecognized tile character in the map body.
	ErrTileChar = errors.New("gridmap: unrecognized tile character")
	// ErrOutOfBounds indicates a tile query addressed a cell outside the grid.
	ErrOutOfBounds = errors.New("gridmap: tile query out of bounds")
)

// TerrainKind classifies a single grid tile.
type TerrainKind uint8

const (
	// Terrain is normal passable ground.
	Terrain TerrainKind = iota
	// OutOfBounds is unpassable terrain.
	OutOfBounds
	// Tree is an unpassable tree tile.
	Tree
	// Swamp is passable, slower ground.
	Swamp
	// Water is traversable only by water-borne travel.
	Water
)

// String returns the human-readable name of the terrain kind.
func (k TerrainKind) String() string {
	switch k {
	case Terrain:
		return "Terrain"
	case OutOfBounds:
		return "OutOfBounds"
	case Tree:
		return "Tree"
	case Swamp:
		return "Swamp"
	case Water:
		return "Water"
	default:
		return fmt.Sprintf("TerrainKind(%d)", uint8(k))
	}
}

// Rune returns the canonical map-source character for the terrain kind.
// Kinds with two source spellings ('.'/'G', '@'/'O') report the first.
func (k TerrainKind) Rune() rune {
	switch k {
	case Terrain:
		return '.'
	case OutOfBounds:
		return '@'
	case Tree:
		return 'T'
	case Swamp:
		return 'S'
	case Water:
		return 'W'
	default:
		return '?'
	}
}

// ParseTerrain maps a map-source character to its TerrainKind.
// Returns ErrTileChar for any character outside the mapping table.
func ParseTerrain(c rune) (TerrainKind, error) {
	switch c {
	case '.', 'G':
		return Terrain, nil
	case '@', 'O':
		return OutOfBounds, nil
	case 'T':
		return Tree, nil
	case 'S':
		return Swamp, nil
	case 'W':
		return Water, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrTileChar, c)
	}
}

// GridMap is an immutable, fully-validated terrain grid.
// Tiles are stored row-major: index = x + y*width.
type GridMap struct {
	width, height int
	tiles         []TerrainKind
	source        string
}
