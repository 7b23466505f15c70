package comparisons

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/google/btree"
)

// The balanced trees hold sets, so only distinct values are compared here.
func TestSameOrderAsBTree(t *testing.T) {
	tree := Trees.From[int, uint32](items)
	ref := btree.NewOrderedG[int](8)
	for _, v := range items {
		ref.ReplaceOrInsert(v)
	}
	var want []int
	ref.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if got := tree.Slice(); !slices.Equal(got, want) {
		t.Errorf("in order differs from btree")
	}
	for i := 0; i < len(items); i += 3 {
		tree.Remove(items[i])
		ref.Delete(items[i])
	}
	if got, ok := tree.Minimum(); ok {
		if want, _ := ref.Min(); got != want {
			t.Errorf("Minimum() = %d, btree has %d", got, want)
		}
	}
	if tree.Size() != ref.Len() {
		t.Errorf("size %d, btree has %d", tree.Size(), ref.Len())
	}
}

func TestSuccessorMatchesRBTree(t *testing.T) {
	tree := Trees.From[int, uint32](items[:1000])
	ref := redblacktree.NewWithIntComparator()
	for _, v := range items[:1000] {
		ref.Put(v, struct{}{})
	}
	for _, v := range items[:1000] {
		next, ok := tree.Successor(v)
		c, found := ref.Ceiling(v + 1)
		if ok != found || (ok && next != c.Key.(int)) {
			t.Errorf("Successor(%d) = %d, %v, red-black tree ceiling gives %v, %v", v, next, ok, c, found)
		}
	}
}
