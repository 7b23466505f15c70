package Trees

import (
	"math"

	"golang.org/x/exp/constraints"
)

// base is the arena holding every node of a tree. ns[0] is the nil
// sentinel: it is never handed out and never written to, so a 0 link
// reads as "no node" everywhere.
type base[T any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the free indexes; node::l represents next.
	sz         int
	ns         []node[T, S]
}

// makeBase preallocates hint nodes; hints too large to preallocate are ignored.
func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	c := 1
	if uint64(hint) < math.MaxInt32 {
		c += int(hint)
	}
	ns := make([]node[T, S], 1, c)
	return base[T, S]{ns: ns}
}

// addFree index once. The value is zeroed so the arena doesn't keep it alive.
func (u *base[T, S]) addFree(a S) {
	u.ns[a] = node[T, S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ns[b].l
	return b
}

// alloc a node holding v under parent p, filling holes before appending.
// The returned index is only valid until the next alloc if the caller
// keeps pointers into ns, so callers keep indexes instead.
func (u *base[T, S]) alloc(v T, p S) S {
	if i := u.popFree(); i != 0 {
		u.ns[i] = node[T, S]{v: v, p: p}
		return i
	}
	if m := uint64(^S(0)); uint64(len(u.ns)) > m {
		panic(CapacityError{m})
	}
	i := S(len(u.ns))
	u.ns = append(u.ns, node[T, S]{v: v, p: p})
	return i
}

// replace the subtree at i with the subtree at c in i's parent (or the root).
// i keeps its own links.
func (u *base[T, S]) replace(i, c S) {
	p := u.ns[i].p
	if c != 0 {
		u.ns[c].p = p
	}
	if p == 0 {
		u.root = c
	} else if u.ns[p].l == i {
		u.ns[p].l = c
	} else {
		u.ns[p].r = c
	}
}

// minNode of the subtree rooting at i, i!=0.
// Time: O(D); Space: O(1)
func (u *base[T, S]) minNode(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

// maxNode of the subtree rooting at i, i!=0.
// Time: O(D); Space: O(1)
func (u *base[T, S]) maxNode(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// nextNode is the in-order successor node of i, 0 if i is the last node.
// Without a right subtree, climb until arriving from a left link.
// Time: O(D); Space: O(1)
func (u *base[T, S]) nextNode(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.minNode(r)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].l == i {
			return p
		}
	}
	return 0
}

// prevNode mirrors nextNode.
func (u *base[T, S]) prevNode(i S) S {
	if l := u.ns[i].l; l != 0 {
		return u.maxNode(l)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].r == i {
			return p
		}
	}
	return 0
}

// Size returns the number of elements.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() int {
	return u.sz
}

// Clear the tree. The arena keeps its capacity; released values are zeroed.
// Time: O(len(arena))
func (u *base[T, S]) Clear() {
	clear(u.ns)
	u.ns = u.ns[:1]
	u.root, u.free, u.sz = 0, 0, 0
}
