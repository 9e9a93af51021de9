package iterator

import (
	"go.lepak.sg/bstree/tree"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree that yields
// keys in ascending order.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	stack []*tree.Node[T]
	at    *tree.Node[T]
}

// Recursive in order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
//
// Everything up to (1) is the walk down the left spine, which we
// replicate by pushing every node on the way onto i.stack.
// Popping a node is f(n), the associated call to Item.
// Resuming from (2) means walking down the left spine of the
// popped node's right child.

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint so the stack
// is allocated once. Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any](root *tree.Node[T], heightHint int) *InOrder[T] {
	if heightHint < 0 {
		heightHint = 0
	}

	i := &InOrder[T]{
		stack: make([]*tree.Node[T], 0, heightHint),
	}
	i.pushLeft(root)

	return i
}

func (i *InOrder[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Next advances to the next smallest key.
// It returns false once every key has been yielded.
func (i *InOrder[T]) Next() bool {
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

	i.pushLeft(i.at.Right)

	return true
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	if i.at == nil {
		panic("Item called without a successful call to Next")
	}

	return i.at.Key
}
