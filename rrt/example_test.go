// File: rrt/example_test.go
package rrt_test

import (
	"fmt"
	"strings"

	"github.com/mrpeteypoo/rrtgrid/gridmap"
	"github.com/mrpeteypoo/rrtgrid/rrt"
)

////////////////////////////////////////////////////////////////////////////////
// Example: planning a route across an open field
////////////////////////////////////////////////////////////////////////////////

// ExamplePlanner demonstrates a complete planning session: load a map,
// prepare the tree, drive growth until the goal is absorbed, and extract a
// feasible route.
// Scenario:
//
//   - 8×8 obstacle-free Terrain grid.
//   - A fixed seed makes the session reproducible.
//
// Complexity: O(cellCount) per GenerateBranch call.
func ExamplePlanner() {
	src := "type octile\nheight 8\nwidth 8\nmap\n" +
		strings.Repeat(strings.Repeat(".", 8)+"\n", 8)
	m, err := gridmap.Load(strings.NewReader(src), "field.map")
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	p := rrt.New(rrt.WithSeed(7))
	if err = p.PrepareTree(m, rrt.Point{X: 0, Y: 0}, rrt.Point{X: 7, Y: 7}); err != nil {
		fmt.Println("prepare failed:", err)
		return
	}

	for !p.HasFinished() {
		p.GenerateBranch()
	}

	path, _ := p.Path()
	fmt.Println("finished:", p.HasFinished())
	fmt.Println("route start:", path[0])
	fmt.Println("route end:", path[len(path)-1])

	// Output:
	// finished: true
	// route start: (0,0)
	// route end: (7,7)
}
