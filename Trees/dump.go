package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

func (u *OrderedTree[T, S]) label() string {
	if u.name == "" {
		return "tree"
	}
	return u.name
}

// String is the name of the tree followed by its elements in order.
func (u *OrderedTree[T, S]) String() string {
	var sb strings.Builder
	sb.WriteString(u.label())
	sb.WriteString(" contents:")
	for _, v := range u.Slice() {
		fmt.Fprintf(&sb, " %v", v)
	}
	return sb.String()
}

// Dump writes String and a newline to w.
func (u *OrderedTree[T, S]) Dump(w io.Writer) error {
	_, err := io.WriteString(w, u.String()+"\n")
	return err
}

// Shape renders the links of the tree, one node per line, left child first.
// Recursive.
func (u *OrderedTree[T, S]) Shape() string {
	if u.root == 0 {
		return treeprint.NewWithRoot(u.label() + " (empty)").String()
	}
	t := treeprint.NewWithRoot(u.ns[u.root].v)
	u.shape(t, u.root)
	return t.String()
}

func (u *OrderedTree[T, S]) shape(t treeprint.Tree, curI S) {
	cur := u.ns[curI]
	if cur.l != 0 {
		u.shape(t.AddMetaBranch("L", u.ns[cur.l].v), cur.l)
	}
	if cur.r != 0 {
		u.shape(t.AddMetaBranch("R", u.ns[cur.r].v), cur.r)
	}
}
