// Package gridmap models a discretized terrain grid loaded from a plain-text
// map source, for use by grid-based path planners.
//
// What:
//
//   - GridMap owns positive width/height dimensions and a row-major sequence
//     of per-tile TerrainKind values (index = x + y*width).
//   - Load/LoadFile parse the textual map format (header followed by
//     width*height single-character tile tokens) and validate it fully
//     before a GridMap is ever handed to a caller.
//   - Tile/TileAt answer terrain queries with explicit bounds checking.
//
// Map source format:
//
//	line 1:      discarded (free-form type line)
//	"height" H:  label token followed by the unsigned height value
//	"width"  W:  label token followed by the unsigned width value
//	one line:    discarded (remainder of the width line)
//	one line:    discarded (free-form separator, typically "map")
//	tiles:       exactly W*H whitespace-separated single characters
//
// Tile characters:
//
//	'.' or 'G' → Terrain
//	'@' or 'O' → OutOfBounds
//	'T'        → Tree
//	'S'        → Swamp
//	'W'        → Water
//
// Errors:
//
//   - ErrHeader:      a header token is missing or non-numeric.
//   - ErrDimension:   width or height is zero, too large, or their product
//     does not fit in an int.
//   - ErrTileCount:   the tile token count differs from width*height.
//   - ErrTileChar:    an unrecognized tile character was read.
//   - ErrOutOfBounds: a Tile/TileAt query addressed a cell outside the grid.
//
// A failed load never leaves a partially-populated GridMap behind; callers
// receive either a fully-validated map or an error. Once constructed, a
// GridMap is immutable and safe to share read-only between a planner and
// any rendering collaborator.
//
// Complexity:
//
//   - Load:          O(W×H) time, O(W×H) memory.
//   - Tile / TileAt: O(1).
package gridmap
