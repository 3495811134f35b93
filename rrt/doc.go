// Package rrt implements a Rapidly-exploring Random Tree planner over a
// discretized terrain grid.
//
// Overview:
//
//   - A Planner composes a read-only gridmap.GridMap with a
//     searchtree.Tree of grid cells and a dense occupancy index (one slot
//     per cell, recording which tree node, if any, sits there).
//   - PrepareTree starts a planning session rooted at the start cell;
//     GenerateBranch performs exactly one bounded growth step per call and
//     is meant to be driven repeatedly by the caller (for example once per
//     render tick); HasFinished reports when the goal cell has been
//     absorbed into the tree.
//   - The planner finds a feasible route, not a shortest one: once both
//     endpoints are occupied, the single-rooted connected tree guarantees a
//     connecting path, which Path extracts by walking parent references.
//
// Growth step (GenerateBranch):
//
//  1. Sample a uniformly random cell; abort if its occupancy slot is filled.
//  2. Find the occupied node nearest to the sample. The default strategy is
//     a linear scan under Manhattan distance with first-found tie-breaking;
//     WithSpatialIndex swaps in an R-tree (Euclidean) lookup for large grids.
//  3. Step from the nearest node toward the sample in SampleStep increments,
//     never travelling farther than MaxBranchLength nor past the sample,
//     testing each intermediate cell against the nearest node's reference
//     terrain class; keep the last valid cell as the candidate endpoint.
//  4. Attach the candidate as a child of the nearest node unless its cell is
//     already occupied. At most one node ever occupies a cell.
//
// Terrain validity (IsValidTile):
//
//   - reference OutOfBounds or Tree ("land" travel): any tile except
//     OutOfBounds and Tree passes.
//   - reference Water: only Water passes.
//   - reference Terrain or Swamp: only Terrain and Swamp pass.
//
// Failed growth steps (occupied sample, blocked extension, occupied
// candidate) are silent no-ops, not errors; the algorithm tolerates wasted
// steps by design of the sampling scheme.
//
// Determinism:
//
//   - WithSeed makes a session fully reproducible: the Planner owns its own
//     rand.Rand, reseeded on every PrepareTree.
//   - Without an explicit seed, PrepareTree seeds from the wall clock, so
//     two sessions prepared within the same clock reading sample
//     identically. Callers who care should always pass a seed.
//
// Concurrency:
//
//   - Single-threaded and synchronous. The tree and occupancy index are
//     mutated only by their owning Planner; the grid may be shared
//     read-only with rendering collaborators.
//
// Errors:
//
//   - ErrNilGrid:     PrepareTree received a nil grid.
//   - ErrOutOfBounds: an endpoint lies outside the grid.
//   - ErrNotPrepared: a query that needs an active session ran before
//     PrepareTree.
//   - ErrNotFinished: Path was asked for before the goal was reached.
//
// Complexity per GenerateBranch call: O(cellCount) with the default linear
// nearest-neighbor scan, plus O(MaxBranchLength / SampleStep) extension
// probes; O(log n) nearest lookup with WithSpatialIndex.
package rrt
