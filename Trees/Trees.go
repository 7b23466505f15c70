package Trees

import "iter"

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and carries no meaning; it must not be
// mistaken for an element of the tree.
// Duplicates are allowed: every Insert adds one element.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Equal values are kept as separate elements.
	Insert(v T)
	//InsertAll inserts every element of vs in order.
	InsertAll(vs ...T)
	//Remove one element equal to v from the Tree. Returning true if one was
	//removed, false if v wasn't in the Tree.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v, v must be in the tree.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v, v must be in the tree.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() int
	//InOrder calls f on the elements in ascending order until f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(T) bool)
	//All is InOrder as an iter.Seq.
	All() iter.Seq[T]
	//Slice returns a fresh slice of all the elements in ascending order.
	Slice() []T
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or a link doesn't point back.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
