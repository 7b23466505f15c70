package Trees

import (
	"iter"

	"github.com/g-m-twostay/ordtree/Queues"
)

// InOrder [Tree.InOrder]
// Walks with the parent links, so it needs no stack and doesn't modify the tree.
// Time: amortized O(1) per element; Space: O(1)
func (u *OrderedTree[T, S]) InOrder(f func(T) bool) {
	if u.root == 0 {
		return
	}
	for curI := u.minNode(u.root); curI != 0; curI = u.nextNode(curI) {
		if !f(u.ns[curI].v) {
			return
		}
	}
}

// All [Tree.All]
func (u *OrderedTree[T, S]) All() iter.Seq[T] {
	return u.InOrder
}

// Slice [Tree.Slice]
// len(result)==Size(). Each call returns a new slice.
// Time: O(n)
func (u *OrderedTree[T, S]) Slice() []T {
	vs := make([]T, 0, u.sz)
	u.InOrder(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

type levelItem[S any] struct {
	i S
	d int
}

func (u *OrderedTree[T, S]) levelOrder(f func(S, int) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[S]](8)
	q.Push(levelItem[S]{u.root, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.i, it.d) {
			return
		}
		if cur := u.ns[it.i]; cur.l != 0 {
			q.Push(levelItem[S]{cur.l, it.d + 1})
		}
		if cur := u.ns[it.i]; cur.r != 0 {
			q.Push(levelItem[S]{cur.r, it.d + 1})
		}
	}
}

// LevelOrder calls f with every element and its depth (the root has depth 0),
// level by level from left to right, until f returns false.
// Time: O(n); Space: O(width)
func (u *OrderedTree[T, S]) LevelOrder(f func(v T, depth int) bool) {
	u.levelOrder(func(i S, d int) bool {
		return f(u.ns[i].v, d)
	})
}
