// Package tree contains the node layout and ordering helpers
// shared by the tree implementations and iterators in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is one position in a binary tree. A node exclusively owns
// its children: there are no parent pointers, so restructuring is
// always done by replacing whole subtrees.
type Node[T any] struct {
	Key         T
	Left, Right *Node[T]
}

func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Leftmost returns the leftmost node of the subtree rooted at n,
// which holds its smallest key. It returns nil if n is nil.
func (n *Node[T]) Leftmost() *Node[T] {
	if n == nil {
		return nil
	}

	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Rightmost is the mirror of Leftmost.
func (n *Node[T]) Rightmost() *Node[T] {
	if n == nil {
		return nil
	}

	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Height returns the number of nodes on the longest path from n
// down to a leaf. A nil subtree has height 0 and a leaf has height 1.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node[T]) Count() int {
	if n == nil {
		return 0
	}

	return n.Left.Count() + n.Right.Count() + 1
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare orders l relative to r.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
