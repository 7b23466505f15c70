package Trees

import "golang.org/x/exp/constraints"

// A node in the OrderedTree.
// p, l and r are indexes into the arena, 0 means no node. p never owns
// anything; it is only used to walk upwards.
// When a node is in the free list, l is the next free index and v is zero.
type node[T any, S constraints.Unsigned] struct {
	v       T
	p, l, r S
}

// outcome of locating a value in the tree.
type outcome uint8

const (
	empty       outcome = iota // no root.
	found                      // the returned index holds an equal value.
	insertLeft                 // the value belongs at the left of the returned index, whose l is 0.
	insertRight                // the value belongs at the right of the returned index, whose r is 0.
)

func (o outcome) String() string {
	switch o {
	case empty:
		return "empty"
	case found:
		return "found"
	case insertLeft:
		return "insertLeft"
	case insertRight:
		return "insertRight"
	}
	return "invalid"
}
