package iterator

import (
	"go.lepak.sg/bstree/tree"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	stack []*tree.Node[T]
	at    *tree.Node[T]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root. heightHint works the same as in NewInOrder.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](root *tree.Node[T], heightHint int) *InOrderReverse[T] {
	if heightHint < 0 {
		heightHint = 0
	}

	i := &InOrderReverse[T]{
		stack: make([]*tree.Node[T], 0, heightHint),
	}
	i.pushRight(root)

	return i
}

func (i *InOrderReverse[T]) pushRight(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Next advances to the next largest key.
// Basically InOrder.Next but left and right are flipped.
func (i *InOrderReverse[T]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	top := len(i.stack) - 1
	i.at = i.stack[top]
	i.stack[top] = nil
	i.stack = i.stack[:top]

	i.pushRight(i.at.Left)

	return true
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	if i.at == nil {
		panic("Item called without a successful call to Next")
	}

	return i.at.Key
}
