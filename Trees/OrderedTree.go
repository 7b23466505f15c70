package Trees

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// OrderedTree is a binary search tree that allows repeated values. It
// doesn't balance itself, so its height D depends on the insertion order:
// O(log n) on average for random input and O(n) for sorted input.
// Every value in the left subtree of a node is <= the node's value, every
// value in the right subtree is >=. An equal value is always inserted as
// the immediate left child of the first equal node found.
// T is the type of values it will hold, S is the type of the indexes
// used to link nodes in the arena; the tree can't hold more than the
// maximum value of S nodes.
// OrderedTree isn't safe for concurrent use.
type OrderedTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp  func(a, b T) int
	name string
}

var _ Tree[int] = (*OrderedTree[int, uint32])(nil)

// New returns an empty tree ordered by compare, which must be a total
// order returning <0, 0 or >0 like cmp.Compare. hint is the expected
// number of elements.
func New[T any, S constraints.Unsigned](compare func(a, b T) int, hint S) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{base: makeBase[T](hint), cmp: compare}
}

// NewOrdered returns an empty tree ordered by the built-in operators of T.
// Comparing two values that are neither <, >, nor == panics with
// UnorderedError.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](hint S) *OrderedTree[T, S] {
	return New(compareOrdered[T], hint)
}

// From builds a tree by inserting every element of vs in order. Unlike
// the balanced trees, vs needn't be sorted; a sorted vs gives a tree of
// height len(vs).
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) *OrderedTree[T, S] {
	u := NewOrdered[T](S(len(vs)))
	u.InsertAll(vs...)
	return u
}

func compareOrdered[T cmp.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	} else if a == b {
		return 0
	}
	panic(UnorderedError{a, b})
}

// Named tags the tree with a name used only by Dump and String.
func (u *OrderedTree[T, S]) Named(name string) *OrderedTree[T, S] {
	u.name = name
	return u
}

// Name of the tree, "" if never named.
func (u *OrderedTree[T, S]) Name() string {
	return u.name
}

// locate where v is or would be. The returned index is meaningless when
// the outcome is empty.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) locate(v T) (S, outcome) {
	curI := u.root
	if curI == 0 {
		return 0, empty
	}
	for {
		cur := &u.ns[curI]
		if c := u.cmp(v, cur.v); c < 0 {
			if cur.l == 0 {
				return curI, insertLeft
			}
			curI = cur.l
		} else if c > 0 {
			if cur.r == 0 {
				return curI, insertRight
			}
			curI = cur.r
		} else {
			return curI, found
		}
	}
}

// Insert [Tree.Insert]
// A value equal to an existing node n becomes n's left child, and n's
// previous left subtree moves under the new node's left.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Insert(v T) {
	at, o := u.locate(v)
	switch o {
	case empty:
		u.cmp(v, v) // a value unordered with itself panics before becoming the root.
		u.root = u.alloc(v, 0)
	case insertLeft:
		n := u.alloc(v, at)
		u.ns[at].l = n
	case insertRight:
		n := u.alloc(v, at)
		u.ns[at].r = n
	case found:
		n := u.alloc(v, at)
		if l := u.ns[at].l; l != 0 {
			u.ns[n].l = l
			u.ns[l].p = n
		}
		u.ns[at].l = n
	default:
		panic("Trees: invalid search outcome " + o.String())
	}
	u.sz++
}

// InsertAll [Tree.InsertAll]
// The order of vs only changes the shape of the tree.
// Time: O(len(vs)*D)
func (u *OrderedTree[T, S]) InsertAll(vs ...T) {
	for _, v := range vs {
		u.Insert(v)
	}
}

// InsertSeq inserts everything seq yields, in order.
func (u *OrderedTree[T, S]) InsertSeq(seq iter.Seq[T]) {
	for v := range seq {
		u.Insert(v)
	}
}

// Remove [Tree.Remove]
// A node with two children takes the value of its successor, and the
// successor's node is removed instead.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Remove(v T) bool {
	at, o := u.locate(v)
	if o != found {
		return false
	}
	u.removeNode(at)
	return true
}

// removeNode i from the tree. Recursive, at most once: the successor of a node
// with two children is the leftmost node of its right subtree, so it has no left child.
func (u *OrderedTree[T, S]) removeNode(i S) {
	cur := &u.ns[i]
	if cur.l != 0 && cur.r != 0 {
		s := u.minNode(cur.r)
		cur.v = u.ns[s].v
		u.removeNode(s)
		return
	}
	c := cur.l
	if c == 0 {
		c = cur.r
	}
	u.replace(i, c)
	u.addFree(i)
	u.sz--
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Has(v T) bool {
	_, o := u.locate(v)
	return o == found
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.minNode(u.root)].v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.maxNode(u.root)].v, true
}

// Successor [Tree.Successor]
// Returns false when v isn't in the tree or v is the maximum. Nodes equal
// to v are skipped, so the result is strictly greater than v.
// Time: O(D+k), k is the number of elements equal to v.
func (u *OrderedTree[T, S]) Successor(v T) (T, bool) {
	at, o := u.locate(v)
	if o != found {
		return *new(T), false
	}
	for s := u.nextNode(at); s != 0; s = u.nextNode(s) {
		if u.cmp(u.ns[s].v, v) > 0 {
			return u.ns[s].v, true
		}
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Returns false when v isn't in the tree or v is the minimum.
// Time: O(D+k), k is the number of elements equal to v.
func (u *OrderedTree[T, S]) Predecessor(v T) (T, bool) {
	at, o := u.locate(v)
	if o != found {
		return *new(T), false
	}
	for p := u.prevNode(at); p != 0; p = u.prevNode(p) {
		if u.cmp(u.ns[p].v, v) < 0 {
			return u.ns[p].v, true
		}
	}
	return *new(T), false
}

// Height is the number of nodes on the longest root to leaf path, 0 for
// an empty tree.
// Time: O(n); Space: O(width)
func (u *OrderedTree[T, S]) Height() (h int) {
	u.levelOrder(func(_ S, d int) bool {
		h = max(h, d+1)
		return true
	})
	return
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(1)
func (u *OrderedTree[T, S]) Corrupt() bool {
	if u.root == 0 {
		return u.sz != 0
	}
	if u.ns[u.root].p != 0 {
		return true
	}
	n := 0
	var prev S
	for curI := u.minNode(u.root); curI != 0; curI = u.nextNode(curI) {
		if n++; n > u.sz {
			return true
		}
		cur := u.ns[curI]
		if (cur.l != 0 && u.ns[cur.l].p != curI) || (cur.r != 0 && u.ns[cur.r].p != curI) {
			return true
		}
		if prev != 0 && u.cmp(u.ns[prev].v, cur.v) > 0 {
			return true
		}
		prev = curI
	}
	return n != u.sz
}
