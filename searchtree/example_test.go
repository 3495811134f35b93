// File: searchtree/example_test.go
package searchtree_test

import (
	"fmt"

	"github.com/mrpeteypoo/rrtgrid/searchtree"
)

////////////////////////////////////////////////////////////////////////////////
// Example: growing and walking a tree
////////////////////////////////////////////////////////////////////////////////

// Example demonstrates building a small tree and traversing it pre-order.
// Scenario:
//
//   - Root "base" with two children; the first child has one child of its own.
//   - Walk visits parents before children, siblings in insertion order.
func Example() {
	tr := searchtree.New("base")
	camp, _ := tr.AddChild(tr.Root(), "camp")
	_, _ = tr.AddChild(tr.Root(), "ridge")
	_, _ = tr.AddChild(camp, "summit")

	_ = tr.Walk(tr.Root(), func(id searchtree.NodeID) bool {
		v, _ := tr.Data(id)
		depth := 0
		for p := tr.Parent(id); p != searchtree.None; p = tr.Parent(p) {
			depth++
		}
		fmt.Printf("%*s%s\n", depth*2, "", v)

		return true
	})

	// Output:
	// base
	//   camp
	//     summit
	//   ridge
}

////////////////////////////////////////////////////////////////////////////////
// Example: detach-on-copy
////////////////////////////////////////////////////////////////////////////////

// ExampleTree_CloneSubtree shows that cloning a non-root node produces an
// independent tree whose root has no parent.
func ExampleTree_CloneSubtree() {
	tr := searchtree.New(0)
	child, _ := tr.AddChild(tr.Root(), 1)
	_, _ = tr.AddChild(child, 2)

	clone, _ := tr.CloneSubtree(child)
	fmt.Println("source parent is root:", tr.Parent(child) == tr.Root())
	fmt.Println("clone root detached:", clone.Parent(clone.Root()) == searchtree.None)
	fmt.Println("clone size:", clone.Len())

	// Output:
	// source parent is root: true
	// clone root detached: true
	// clone size: 2
}
