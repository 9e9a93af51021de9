package binary

import (
	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
)

// Traversal selects the order in which Traverse visits keys.
type Traversal int

const (
	// InOrderTraversal visits left, self, right: keys come out ascending.
	InOrderTraversal Traversal = iota
	// PreOrderTraversal visits self, left, right.
	PreOrderTraversal
	// PostOrderTraversal visits left, right, self.
	PostOrderTraversal
)

func (o Traversal) String() string {
	switch o {
	case InOrderTraversal:
		return "in-order"
	case PreOrderTraversal:
		return "pre-order"
	case PostOrderTraversal:
		return "post-order"
	default:
		return "<invalid binary.Traversal>"
	}
}

// Traverse applies f to each key in the tree in the given order.
// If f returns false, the traversal is stopped early.
func (t *Tree[T]) Traverse(o Traversal, f func(k T) bool) {
	switch o {
	case InOrderTraversal:
		t.InOrder(f)
	case PreOrderTraversal:
		t.PreOrder(f)
	case PostOrderTraversal:
		t.PostOrder(f)
	default:
		panic("invalid traversal " + o.String())
	}
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

// PreOrder applies f to each key in the tree pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	visitPreOrder(t.root, f)
}

// PostOrder applies f to each key in the tree post-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PostOrder(f func(k T) bool) {
	visitPostOrder(t.root, f)
}

// Classic recursive traversals.
// Compare these to iterator.InOrder which is not recursive.

func visitInOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	return visitInOrder(n.Left, f) &&
		f(n.Key) &&
		visitInOrder(n.Right, f)
}

func visitPreOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	return f(n.Key) &&
		visitPreOrder(n.Left, f) &&
		visitPreOrder(n.Right, f)
}

func visitPostOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	return visitPostOrder(n.Left, f) &&
		visitPostOrder(n.Right, f) &&
		f(n.Key)
}
