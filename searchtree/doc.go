// Package searchtree provides a minimal generic rooted tree, designed as the
// growth structure for sampling-based planners but usable standalone.
//
// What:
//
//   - Tree[T] stores nodes in an arena addressed by stable NodeID handles;
//     nodes hold a value of type T, a parent back-reference, and an ordered
//     child list.
//   - AddChild appends a new exclusively-owned child; removal frees the
//     child's entire subtree (slots are recycled internally).
//   - RemoveChildUnordered is O(1) but may reorder remaining siblings;
//     RemoveChildOrdered preserves sibling order at O(k) for k later siblings.
//   - CloneSubtree deep-copies a subtree into a fresh Tree whose root has no
//     parent — copying always detaches from ancestry. This is a deliberate
//     contract: a clone is an independent tree, never a grafted branch.
//
// Why an arena:
//
//   - NodeID handles stay valid across arena growth, so external indices
//     (such as a planner's per-cell occupancy table) can reference nodes
//     without pointer pinning.
//   - Subtree release is an index walk with no destructor cascade; any
//     external structure referencing removed nodes must be cleared or
//     rebuilt by its owner first.
//
// Invariants:
//
//   - Exactly one node (the root) has no parent.
//   - Every child's parent back-reference names the node owning it.
//   - The structure is acyclic and connected: every live node is reachable
//     from the root by following child lists.
//
// Errors:
//
//   - ErrInvalidNode: a handle does not name a live node of this tree.
//   - ErrChildIndex:  a child index is outside the parent's child list.
//
// Predicates (IsRoot, IsLeaf, ChildCount, Parent) report zero values for
// invalid handles rather than erroring; all mutating and indexed operations
// return checked errors.
//
// A Tree is not safe for concurrent mutation; the intended model is a single
// owning goroutine, with read-only sharing only while no mutation occurs.
package searchtree
