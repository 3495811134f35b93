// Package rrtgrid grows Rapidly-exploring Random Trees over tile-based
// grid maps.
//
// 🚀 What is rrtgrid?
//
//	A small, focused path-planning library that brings together:
//		• Map loading: parse textual grid maps into terrain-class grids
//		• Search trees: a generic arena-backed rooted tree with stable handles
//		• Planning: uniform sampling, nearest-node lookup, collision-checked
//		  extension and goal detection
//
// ✨ Why choose rrtgrid?
//
//   - Deterministic – inject a seed and replay a planning session exactly
//   - Checked APIs – out-of-range lookups return sentinel errors, never panic
//   - Extensible – opt into an R-tree nearest-neighbor index for large maps
//
// Everything is organized under three subpackages:
//
//	gridmap/    — textual map loader + terrain queries
//	searchtree/ — generic rooted tree used as the planner's backbone
//	rrt/        — the planner itself: sampling, extension, termination
//
// Two demo programs live under cmd/:
//
//	rrtview  — interactive terminal viewer (click to move start and goal)
//	rrtserve — HTTP/WebSocket server streaming tree growth to clients
//
// Quick ASCII example:
//
//	    @@@@@
//	    @A..@
//	    @.WB@
//	    @@@@@
//
//	represents a walled 5×4 map with start A, goal B and a water cell
//	between them.
//
// Start with gridmap.Load, hand the result to rrt.New().PrepareTree, then
// call GenerateBranch until HasFinished reports true.
//
//	go get github.com/mrpeteypoo/rrtgrid
package rrtgrid
