package gridmap_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrpeteypoo/rrtgrid/gridmap"
)

// mapSource assembles a well-formed map source from a header and tile rows.
func mapSource(height, width int, rows ...string) string {
	var b strings.Builder
	b.WriteString("type octile\n")
	b.WriteString("height " + strconv.Itoa(height) + "\n")
	b.WriteString("width " + strconv.Itoa(width) + "\n")
	b.WriteString("map\n")
	for _, r := range rows {
		b.WriteString(r + "\n")
	}

	return b.String()
}

//----------------------------------------------------------------------------//
// Load: well-formed sources
//----------------------------------------------------------------------------//

// TestLoad_AllTerrain verifies a 3×2 all-'.' map loads with the right
// dimensions and every tile classified as Terrain.
func TestLoad_AllTerrain(t *testing.T) {
	src := mapSource(2, 3, "...", "...")
	m, err := gridmap.Load(strings.NewReader(src), "inline")
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 6, m.CellCount())
	assert.Equal(t, "inline", m.SourceLocation())

	for i := 0; i < m.CellCount(); i++ {
		k, err := m.TileAt(i)
		require.NoError(t, err)
		assert.Equal(t, gridmap.Terrain, k, "tile %d", i)
	}
}

// TestLoad_CharacterMapping checks every recognized tile character decodes to
// the documented TerrainKind.
func TestLoad_CharacterMapping(t *testing.T) {
	cases := []struct {
		ch   string
		want gridmap.TerrainKind
	}{
		{".", gridmap.Terrain},
		{"G", gridmap.Terrain},
		{"@", gridmap.OutOfBounds},
		{"O", gridmap.OutOfBounds},
		{"T", gridmap.Tree},
		{"S", gridmap.Swamp},
		{"W", gridmap.Water},
	}
	for _, tc := range cases {
		t.Run(tc.ch, func(t *testing.T) {
			src := mapSource(1, 1, tc.ch)
			m, err := gridmap.Load(strings.NewReader(src), "inline")
			require.NoError(t, err)
			k, err := m.Tile(0, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, k)
		})
	}
}

// TestLoad_CanonicalLayout pins the exact byte layout of a standard source:
// the remainder of the width line and the `map` line are the two discarded
// lines, and the first tile row is decoded, not skipped.
func TestLoad_CanonicalLayout(t *testing.T) {
	src := "type octile\nheight 2\nwidth 3\nmap\nWWW\n@@@\n"
	m, err := gridmap.Load(strings.NewReader(src), "inline")
	require.NoError(t, err)
	require.Equal(t, 6, m.CellCount())

	k, err := m.Tile(0, 0)
	require.NoError(t, err)
	assert.Equal(t, gridmap.Water, k)
	k, err = m.Tile(2, 1)
	require.NoError(t, err)
	assert.Equal(t, gridmap.OutOfBounds, k)
}

// TestLoad_HeaderFieldsMaySpanLines accepts labels and values separated by
// arbitrary whitespace and newlines, as the format permits.
func TestLoad_HeaderFieldsMaySpanLines(t *testing.T) {
	src := "type octile\nheight\n2 width\t2 trailing\nmap\n.. ..\n"
	m, err := gridmap.Load(strings.NewReader(src), "inline")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 2, m.Height())
}

// TestLoad_TilesMaySpanLines tolerates tiles split across lines and mixed
// whitespace between tokens.
func TestLoad_TilesMaySpanLines(t *testing.T) {
	src := "type octile\nheight 2\nwidth 3\nmap\n. G\t.\n@ T W\n"
	m, err := gridmap.Load(strings.NewReader(src), "inline")
	require.NoError(t, err)

	want := []gridmap.TerrainKind{
		gridmap.Terrain, gridmap.Terrain, gridmap.Terrain,
		gridmap.OutOfBounds, gridmap.Tree, gridmap.Water,
	}
	for i, k := range want {
		got, err := m.TileAt(i)
		require.NoError(t, err)
		assert.Equal(t, k, got, "tile %d", i)
	}
}

//----------------------------------------------------------------------------//
// Load: malformed sources
//----------------------------------------------------------------------------//

// TestLoad_MalformedHeader verifies every missing or non-numeric header field
// fails with ErrHeader, and bad dimension values fail with ErrDimension.
func TestLoad_MalformedHeader(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", gridmap.ErrHeader},
		{"OnlyTypeLine", "type octile\n", gridmap.ErrHeader},
		{"MissingHeightValue", "type octile\nheight\n", gridmap.ErrHeader},
		{"NonNumericHeight", "type octile\nheight two\nwidth 2\nmap\n....\n", gridmap.ErrHeader},
		{"NonNumericWidth", "type octile\nheight 2\nwidth two\nmap\n....\n", gridmap.ErrHeader},
		{"NegativeHeight", "type octile\nheight -2\nwidth 2\nmap\n....\n", gridmap.ErrHeader},
		{"MissingWidth", "type octile\nheight 2\n", gridmap.ErrHeader},
		{"MissingSeparator", "type octile\nheight 2 width 2\n", gridmap.ErrHeader},
		{"ZeroHeight", "type octile\nheight 0\nwidth 2\nmap\n\n", gridmap.ErrDimension},
		{"ZeroWidth", "type octile\nheight 2\nwidth 0\nmap\n\n", gridmap.ErrDimension},
		{"HugeHeight", "type octile\nheight 99999999999999999999\nwidth 2\nmap\n\n", gridmap.ErrHeader},
		{"MaxIntWidth", "type octile\nheight 2\nwidth 9223372036854775807\nmap\n\n", gridmap.ErrDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.Load(strings.NewReader(tc.src), "inline")
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestLoad_TileCountMismatch covers both too few and too many tile tokens.
func TestLoad_TileCountMismatch(t *testing.T) {
	tooFew := mapSource(2, 2, "...")
	_, err := gridmap.Load(strings.NewReader(tooFew), "inline")
	assert.ErrorIs(t, err, gridmap.ErrTileCount)

	tooMany := mapSource(2, 2, "..", "..", ".")
	_, err = gridmap.Load(strings.NewReader(tooMany), "inline")
	assert.ErrorIs(t, err, gridmap.ErrTileCount)
}

// TestLoad_UnrecognizedTile fails with ErrTileChar on the first bad character.
func TestLoad_UnrecognizedTile(t *testing.T) {
	src := mapSource(2, 2, ".Z", "..")
	_, err := gridmap.Load(strings.NewReader(src), "inline")
	assert.ErrorIs(t, err, gridmap.ErrTileChar)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestTile_Bounds verifies both query forms reject out-of-range cells with
// ErrOutOfBounds instead of panicking.
func TestTile_Bounds(t *testing.T) {
	src := mapSource(2, 3, ".W.", "@T.")
	m, err := gridmap.Load(strings.NewReader(src), "inline")
	require.NoError(t, err)

	k, err := m.Tile(1, 0)
	require.NoError(t, err)
	assert.Equal(t, gridmap.Water, k)
	k, err = m.Tile(0, 1)
	require.NoError(t, err)
	assert.Equal(t, gridmap.OutOfBounds, k)

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		_, err = m.Tile(xy[0], xy[1])
		assert.ErrorIs(t, err, gridmap.ErrOutOfBounds, "Tile(%d,%d)", xy[0], xy[1])
	}
	for _, idx := range []int{-1, 6, 600} {
		_, err = m.TileAt(idx)
		assert.ErrorIs(t, err, gridmap.ErrOutOfBounds, "TileAt(%d)", idx)
	}
}

// TestIndexCoordinate_RoundTrip checks row-major index helpers agree.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	src := mapSource(3, 4, "....", "....", "....")
	m, err := gridmap.Load(strings.NewReader(src), "inline")
	require.NoError(t, err)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			idx := m.Index(x, y)
			gx, gy := m.Coordinate(idx)
			if gx != x || gy != y {
				t.Fatalf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

// TestParseTerrain_Unknown double-checks the direct parser entry point.
func TestParseTerrain_Unknown(t *testing.T) {
	_, err := gridmap.ParseTerrain('?')
	if !errors.Is(err, gridmap.ErrTileChar) {
		t.Errorf("ParseTerrain('?') error = %v; want ErrTileChar", err)
	}
}

// TestTerrainKind_Strings keeps String/Rune in sync with the mapping table.
func TestTerrainKind_Strings(t *testing.T) {
	kinds := []gridmap.TerrainKind{
		gridmap.Terrain, gridmap.OutOfBounds, gridmap.Tree, gridmap.Swamp, gridmap.Water,
	}
	for _, k := range kinds {
		back, err := gridmap.ParseTerrain(k.Rune())
		require.NoError(t, err, "Rune of %s must parse back", k)
		assert.Equal(t, k, back)
		assert.NotContains(t, k.String(), "TerrainKind(")
	}
}
