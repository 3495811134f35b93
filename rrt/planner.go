// Package rrt implements the randomized-growth planning loop.
//
// Notes on implementation choices:
//
//   - The occupancy index is the planner's source of truth for "which cells
//     hold a node"; the tree is the source of truth for connectivity. Every
//     mutation updates both, preserving the at-most-one-node-per-cell
//     invariant.
//   - Branch extension interpolates in floating point and truncates each
//     component toward zero when converting back to a cell, so intermediate
//     probes land on the same cells regardless of travel direction sign.
//   - The RNG lives on the Planner, not in package state; PrepareTree
//     reseeds it, so sessions never interfere with each other or with other
//     users of math/rand.
package rrt

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/mrpeteypoo/rrtgrid/gridmap"
	"github.com/mrpeteypoo/rrtgrid/searchtree"
)

// Planner grows a random search tree between two cells of a terrain grid.
// Construct with New, then drive one session at a time via PrepareTree and
// repeated GenerateBranch calls.
//
// A Planner must not be shared between goroutines while a session is active.
type Planner struct {
	opts Options

	grid      *gridmap.GridMap
	tree      *searchtree.Tree[Point]
	occupancy []searchtree.NodeID
	start     Point
	end       Point

	rng   *rand.Rand
	index *spatialIndex
}

// New constructs a Planner with the given options applied over
// DefaultOptions.
func New(opts ...Option) *Planner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{opts: cfg}
}

// PrepareTree starts a fresh planning session on grid between start and end:
// the previous tree and occupancy index are discarded, a new tree is rooted
// at start, start's occupancy slot is marked, and the RNG is reseeded (from
// Options.Seed, or the wall clock when no seed was configured).
//
// When start == end the session is immediately finished; GenerateBranch will
// never add a node.
//
// Returns ErrNilGrid or ErrOutOfBounds without disturbing any prior session.
// Complexity: O(cellCount) for the occupancy reset.
func (p *Planner) PrepareTree(grid *gridmap.GridMap, start, end Point) error {
	if grid == nil {
		return ErrNilGrid
	}
	if !grid.InBounds(start.X, start.Y) {
		return fmt.Errorf("%w: start %s on %d×%d grid", ErrOutOfBounds, start, grid.Width(), grid.Height())
	}
	if !grid.InBounds(end.X, end.Y) {
		return fmt.Errorf("%w: end %s on %d×%d grid", ErrOutOfBounds, end, grid.Width(), grid.Height())
	}

	p.grid = grid
	p.start, p.end = start, end

	p.occupancy = make([]searchtree.NodeID, grid.CellCount())
	for i := range p.occupancy {
		p.occupancy[i] = searchtree.None
	}
	p.tree = searchtree.New(start)
	p.occupancy[grid.Index(start.X, start.Y)] = p.tree.Root()

	seed := p.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.rng = rand.New(rand.NewSource(seed))

	p.index = nil
	if p.opts.SpatialIndex {
		p.index = newSpatialIndex()
		p.index.insert(start, p.tree.Root())
	}

	return nil
}

// HasFinished reports whether both the start and end cells hold tree nodes.
// The tree is single-rooted and connected, so two occupied cells are always
// joined by a path of tree edges; occupancy of both endpoints is therefore
// sufficient to declare a connecting route exists.
func (p *Planner) HasFinished() bool {
	if p.grid == nil {
		return false
	}

	return p.occupancy[p.grid.Index(p.start.X, p.start.Y)] != searchtree.None &&
		p.occupancy[p.grid.Index(p.end.X, p.end.Y)] != searchtree.None
}

// GenerateBranch performs one growth step. It is a silent no-op before
// PrepareTree, after the goal is reached, when start == end, and whenever
// the step fails to produce a branch (occupied sample, blocked extension,
// occupied candidate cell) — wasted steps are expected, not errors.
func (p *Planner) GenerateBranch() {
	if p.grid == nil || p.start == p.end || p.HasFinished() {
		return
	}

	sample := Point{X: p.rng.Intn(p.grid.Width()), Y: p.rng.Intn(p.grid.Height())}
	if p.occupancy[p.grid.Index(sample.X, sample.Y)] != searchtree.None {
		return
	}

	nearest := p.nearest(sample)
	nearPos, err := p.tree.Data(nearest)
	if err != nil {
		return
	}

	candidate, ok := p.extend(nearPos, sample)
	if !ok {
		return
	}
	slot := p.grid.Index(candidate.X, candidate.Y)
	if p.occupancy[slot] != searchtree.None {
		return
	}

	node, err := p.tree.AddChild(nearest, candidate)
	if err != nil {
		return
	}
	p.occupancy[slot] = node
	if p.index != nil {
		p.index.insert(candidate, node)
	}
}

// IsValidTile reports whether the tile at pos may be entered by travel whose
// reference terrain class is reference:
//
//   - OutOfBounds or Tree reference (land travel): every tile except
//     OutOfBounds and Tree is valid.
//   - Water reference: only Water is valid.
//   - Terrain or Swamp reference: only Terrain and Swamp are valid.
//
// Positions outside the grid (and calls before PrepareTree) are invalid, so
// collaborators may probe raw pointer input safely.
func (p *Planner) IsValidTile(pos Point, reference gridmap.TerrainKind) bool {
	if p.grid == nil {
		return false
	}
	actual, err := p.grid.Tile(pos.X, pos.Y)
	if err != nil {
		return false
	}

	switch reference {
	case gridmap.OutOfBounds, gridmap.Tree:
		return actual != gridmap.OutOfBounds && actual != gridmap.Tree
	case gridmap.Water:
		return actual == gridmap.Water
	default:
		return actual == gridmap.Terrain || actual == gridmap.Swamp
	}
}

// Start returns the session's start cell.
func (p *Planner) Start() Point { return p.start }

// End returns the session's end cell.
func (p *Planner) End() Point { return p.end }

// Grid returns the active grid map, or nil before PrepareTree.
func (p *Planner) Grid() *gridmap.GridMap { return p.grid }

// NodeCount returns the number of nodes in the current tree, 0 before
// PrepareTree.
func (p *Planner) NodeCount() int {
	if p.tree == nil {
		return 0
	}

	return p.tree.Len()
}

// Edges visits every tree edge as a (parent, child) cell pair, parents
// before children. Renderers use this to draw the tree without mutating it.
func (p *Planner) Edges(visit func(parent, child Point)) {
	if p.tree == nil {
		return
	}
	_ = p.tree.Walk(p.tree.Root(), func(id searchtree.NodeID) bool {
		if parent := p.tree.Parent(id); parent != searchtree.None {
			pd, _ := p.tree.Data(parent)
			cd, _ := p.tree.Data(id)
			visit(pd, cd)
		}

		return true
	})
}

// Path returns a feasible start→end route once the goal has been reached,
// by walking parent references from the end node up to the root.
// Returns ErrNotPrepared before PrepareTree and ErrNotFinished while the
// goal cell is unoccupied.
// Complexity: O(path length).
func (p *Planner) Path() ([]Point, error) {
	if p.grid == nil {
		return nil, ErrNotPrepared
	}
	if !p.HasFinished() {
		return nil, ErrNotFinished
	}

	var reversed []Point
	for id := p.occupancy[p.grid.Index(p.end.X, p.end.Y)]; id != searchtree.None; id = p.tree.Parent(id) {
		pos, err := p.tree.Data(id)
		if err != nil {
			return nil, err
		}
		reversed = append(reversed, pos)
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed, nil
}

// nearest picks the occupied node closest to sample, via the R-tree when
// configured and the linear Manhattan scan otherwise.
func (p *Planner) nearest(sample Point) searchtree.NodeID {
	if p.index != nil {
		if id, ok := p.index.nearest(sample); ok {
			return id
		}
	}

	return p.nearestLinear(sample)
}

// nearestLinear scans the whole occupancy index under Manhattan distance.
// Ties are broken by the first match in row-major scan order.
// Complexity: O(cellCount).
func (p *Planner) nearestLinear(sample Point) searchtree.NodeID {
	closest := p.tree.Root()
	nearDistance := math.MaxInt

	for i, id := range p.occupancy {
		if id == searchtree.None {
			continue
		}
		x, y := p.grid.Coordinate(i)
		d := absInt(x-sample.X) + absInt(y-sample.Y)
		if d < nearDistance {
			closest = id
			nearDistance = d
		}
	}

	return closest
}

// extend steps from `from` toward `toward` in SampleStep increments, never
// travelling farther than MaxBranchLength nor past `toward`, and returns the
// last cell that passed the validity rule for from's terrain class.
// The boolean is false when no increment produced a valid cell.
func (p *Planner) extend(from, toward Point) (Point, bool) {
	reference, err := p.grid.Tile(from.X, from.Y)
	if err != nil {
		return Point{}, false
	}

	dx := toward.X - from.X
	dy := toward.Y - from.Y
	magnitude := math.Sqrt(float64(dx*dx + dy*dy))
	if magnitude == 0 {
		return Point{}, false
	}

	var (
		candidate Point
		found     bool
		current   float64
	)
	for current < magnitude && current < p.opts.MaxBranchLength {
		current = math.Min(math.Min(current+p.opts.SampleStep, magnitude), p.opts.MaxBranchLength)
		delta := current / magnitude

		// Component-wise float interpolation truncated toward zero, so the
		// probe sequence is symmetric for positive and negative travel.
		inc := Point{
			X: int(float64(from.X) + float64(dx)*delta),
			Y: int(float64(from.Y) + float64(dy)*delta),
		}
		if inc == from {
			continue
		}
		if !p.IsValidTile(inc, reference) {
			break
		}
		candidate = inc
		found = true
	}

	return candidate, found
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
