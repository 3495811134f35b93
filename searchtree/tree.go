package searchtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for searchtree operations.
var (
	// ErrInvalidNode indicates a NodeID that does not name a live node.
	ErrInvalidNode = errors.New("searchtree: invalid node handle")
	// ErrChildIndex indicates a child index outside the parent's child list.
	ErrChildIndex = errors.New("searchtree: child index out of range")
)

// NodeID is a stable handle to a node within one Tree.
// Handles from one tree are meaningless in another.
type NodeID int

// None is the null node handle, returned where no node applies
// (e.g. the parent of the root).
const None NodeID = -1

// node is a single arena slot.
type node[T any] struct {
	data     T
	parent   NodeID
	children []NodeID
	live     bool
}

// Tree is a rooted tree of T values backed by an arena of recycled slots.
// The zero value is not usable; construct with New.
type Tree[T any] struct {
	nodes []node[T]
	free  []NodeID
	size  int
}

// New creates a tree whose single node carries rootData and has no parent.
// Complexity: O(1).
func New[T any](rootData T) *Tree[T] {
	t := &Tree[T]{}
	t.nodes = append(t.nodes, node[T]{data: rootData, parent: None, live: true})
	t.size = 1

	return t
}

// Root returns the handle of the root node. The root is created by New and
// is never removed, so the handle stays valid for the tree's lifetime.
func (t *Tree[T]) Root() NodeID { return 0 }

// Len returns the number of live nodes in the tree.
func (t *Tree[T]) Len() int { return t.size }

// Valid reports whether id names a live node of this tree.
func (t *Tree[T]) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].live
}

// IsRoot reports whether id is the root node. False for invalid handles.
func (t *Tree[T]) IsRoot(id NodeID) bool {
	return t.Valid(id) && t.nodes[id].parent == None
}

// IsLeaf reports whether id has no children. False for invalid handles.
func (t *Tree[T]) IsLeaf(id NodeID) bool {
	return t.Valid(id) && len(t.nodes[id].children) == 0
}

// ChildCount returns the number of children of id, or 0 for invalid handles.
func (t *Tree[T]) ChildCount(id NodeID) int {
	if !t.Valid(id) {
		return 0
	}

	return len(t.nodes[id].children)
}

// Parent returns the parent handle of id, or None for the root and for
// invalid handles.
func (t *Tree[T]) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return None
	}

	return t.nodes[id].parent
}

// Data returns the value stored at id.
func (t *Tree[T]) Data(id NodeID) (T, error) {
	var zero T
	if !t.Valid(id) {
		return zero, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}

	return t.nodes[id].data, nil
}

// SetData replaces the value stored at id.
func (t *Tree[T]) SetData(id NodeID, data T) error {
	if !t.Valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	t.nodes[id].data = data

	return nil
}

// AddChild allocates a new node owned by parent, carrying data, appended to
// the end of parent's child list. Returns the new node's handle.
// Complexity: amortized O(1).
func (t *Tree[T]) AddChild(parent NodeID, data T) (NodeID, error) {
	if !t.Valid(parent) {
		return None, fmt.Errorf("%w: parent %d", ErrInvalidNode, parent)
	}
	id := t.alloc(data, parent)
	t.nodes[parent].children = append(t.nodes[parent].children, id)

	return id, nil
}

// Child returns the handle of parent's i-th child.
func (t *Tree[T]) Child(parent NodeID, i int) (NodeID, error) {
	if !t.Valid(parent) {
		return None, fmt.Errorf("%w: parent %d", ErrInvalidNode, parent)
	}
	kids := t.nodes[parent].children
	if i < 0 || i >= len(kids) {
		return None, fmt.Errorf("%w: %d of %d", ErrChildIndex, i, len(kids))
	}

	return kids[i], nil
}

// Children returns a copy of id's child list in order.
func (t *Tree[T]) Children(id NodeID) ([]NodeID, error) {
	if !t.Valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	kids := t.nodes[id].children
	out := make([]NodeID, len(kids))
	copy(out, kids)

	return out, nil
}

// FindChildIndex returns the position of child within parent's child list,
// or (0, false) when child is not a direct child of parent.
// Complexity: O(number of children).
func (t *Tree[T]) FindChildIndex(parent, child NodeID) (int, bool) {
	if !t.Valid(parent) {
		return 0, false
	}
	for i, c := range t.nodes[parent].children {
		if c == child {
			return i, true
		}
	}

	return 0, false
}

// RemoveChildUnordered removes parent's i-th child and its entire subtree,
// swapping the last child into the vacated slot. O(1) beyond the subtree
// release, but the relative order of remaining siblings may change.
//
// Any external structure holding handles into the removed subtree must be
// cleared by its owner before or immediately after the call.
func (t *Tree[T]) RemoveChildUnordered(parent NodeID, i int) error {
	if !t.Valid(parent) {
		return fmt.Errorf("%w: parent %d", ErrInvalidNode, parent)
	}
	kids := t.nodes[parent].children
	if i < 0 || i >= len(kids) {
		return fmt.Errorf("%w: %d of %d", ErrChildIndex, i, len(kids))
	}
	t.release(kids[i])
	last := len(kids) - 1
	kids[i] = kids[last]
	t.nodes[parent].children = kids[:last]

	return nil
}

// RemoveChildOrdered removes parent's i-th child and its entire subtree,
// shifting later siblings down so their relative order is preserved.
// Complexity: O(number of later siblings) beyond the subtree release.
func (t *Tree[T]) RemoveChildOrdered(parent NodeID, i int) error {
	if !t.Valid(parent) {
		return fmt.Errorf("%w: parent %d", ErrInvalidNode, parent)
	}
	kids := t.nodes[parent].children
	if i < 0 || i >= len(kids) {
		return fmt.Errorf("%w: %d of %d", ErrChildIndex, i, len(kids))
	}
	t.release(kids[i])
	t.nodes[parent].children = append(kids[:i], kids[i+1:]...)

	return nil
}

// CloneSubtree deep-copies the subtree rooted at id into a fresh Tree.
// The copied root's parent is None even when id itself had a parent:
// cloning detaches from ancestry.
// Complexity: O(subtree size).
func (t *Tree[T]) CloneSubtree(id NodeID) (*Tree[T], error) {
	if !t.Valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	clone := New(t.nodes[id].data)
	t.cloneInto(clone, clone.Root(), id)

	return clone, nil
}

// Walk visits id and its descendants pre-order, children in list order.
// Traversal stops early when visit returns false.
func (t *Tree[T]) Walk(id NodeID, visit func(NodeID) bool) error {
	if !t.Valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	t.walk(id, visit)

	return nil
}

func (t *Tree[T]) walk(id NodeID, visit func(NodeID) bool) bool {
	if !visit(id) {
		return false
	}
	for _, c := range t.nodes[id].children {
		if !t.walk(c, visit) {
			return false
		}
	}

	return true
}

// cloneInto copies the children of src (in t) beneath dst (in clone).
func (t *Tree[T]) cloneInto(clone *Tree[T], dst, src NodeID) {
	for _, c := range t.nodes[src].children {
		nc, _ := clone.AddChild(dst, t.nodes[c].data)
		t.cloneInto(clone, nc, c)
	}
}

// alloc takes a slot from the free list or grows the arena.
func (t *Tree[T]) alloc(data T, parent NodeID) NodeID {
	t.size++
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = node[T]{data: data, parent: parent, live: true}

		return id
	}
	t.nodes = append(t.nodes, node[T]{data: data, parent: parent, live: true})

	return NodeID(len(t.nodes) - 1)
}

// release frees id and its descendants post-order, recycling their slots.
func (t *Tree[T]) release(id NodeID) {
	for _, c := range t.nodes[id].children {
		t.release(c)
	}
	var zero T
	t.nodes[id] = node[T]{data: zero, parent: None}
	t.free = append(t.free, id)
	t.size--
}
