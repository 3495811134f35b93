// Package rrt defines the planner's core types, tunables, and sentinel
// errors.
package rrt

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates PrepareTree was called with a nil grid map.
	ErrNilGrid = errors.New("rrt: grid map is nil")

	// ErrOutOfBounds indicates a start or end cell outside the grid.
	ErrOutOfBounds = errors.New("rrt: endpoint outside the grid")

	// ErrNotPrepared indicates an operation that requires an active planning
	// session was invoked before PrepareTree.
	ErrNotPrepared = errors.New("rrt: planner has no active session")

	// ErrNotFinished indicates Path was requested before the goal cell was
	// reached by the tree.
	ErrNotFinished = errors.New("rrt: goal not yet reached")

	// ErrBadSampleStep indicates a non-positive sample step.
	ErrBadSampleStep = errors.New("rrt: sample step must be positive")

	// ErrBadBranchLength indicates a maximum branch length below one tile.
	ErrBadBranchLength = errors.New("rrt: max branch length must be at least 1")
)

// Default tunables, matching the granularity the planner was designed around:
// quarter-tile collision sampling and branches capped at fifteen tiles.
const (
	DefaultSampleStep      = 0.25
	DefaultMaxBranchLength = 15.0
)

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Options configures a Planner.
//
// SampleStep      – increment, in tiles, between collision probes while extending a branch (> 0).
// MaxBranchLength – maximum travel, in tiles, of a single branch (≥ 1).
// Seed            – RNG seed applied on every PrepareTree; 0 derives a seed
// from the wall clock at PrepareTree time (non-reproducible; see package doc).
// SpatialIndex    – maintain an R-tree of occupied cells and use it for
// nearest-node lookup instead of the linear Manhattan scan.
type Options struct {
	SampleStep      float64
	MaxBranchLength float64
	Seed            int64
	SpatialIndex    bool
}

// Option is a functional option for configuring a Planner.
type Option func(*Options)

// WithSampleStep sets the collision-probe increment in tiles.
// Panics with ErrBadSampleStep for non-positive values; invalid
// configuration is a programming error, surfaced early.
func WithSampleStep(step float64) Option {
	return func(o *Options) {
		if step <= 0 {
			panic(ErrBadSampleStep.Error())
		}
		o.SampleStep = step
	}
}

// WithMaxBranchLength caps the travel of a single branch in tiles.
// Panics with ErrBadBranchLength for values below 1.
func WithMaxBranchLength(length float64) Option {
	return func(o *Options) {
		if length < 1 {
			panic(ErrBadBranchLength.Error())
		}
		o.MaxBranchLength = length
	}
}

// WithSeed fixes the RNG seed used on every PrepareTree, making planning
// sessions deterministic and testable. A seed of 0 restores the default
// wall-clock seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSpatialIndex switches nearest-node lookup from the O(cellCount)
// linear Manhattan scan to an incrementally-maintained R-tree.
//
// The R-tree ranks candidates by Euclidean distance, so on metric ties it
// may extend a different node than the linear scan would; every branch it
// produces still satisfies the terrain-validity rule.
func WithSpatialIndex() Option {
	return func(o *Options) {
		o.SpatialIndex = true
	}
}

// DefaultOptions returns the planner defaults: SampleStep 0.25,
// MaxBranchLength 15, wall-clock seeding, linear nearest-neighbor scan.
func DefaultOptions() Options {
	return Options{
		SampleStep:      DefaultSampleStep,
		MaxBranchLength: DefaultMaxBranchLength,
	}
}
