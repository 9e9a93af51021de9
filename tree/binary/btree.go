// Package binary implements an unbalanced binary search tree.
package binary

import (
	"fmt"
	"math/bits"

	"go.lepak.sg/bstree/chops"
	"go.lepak.sg/bstree/tree"
	"go.lepak.sg/bstree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, deleting, clearing). In particular, the tree must not be
// mutated while an iterator or coroutine over it is still in use.
//
// The zero Tree is empty and may be used immediately. Use New to
// start with one key. Tree should not be copied after first use,
// since copies share nodes.
//
// This tree is not self-balancing. Inserting keys in ascending or
// descending order degrades it to a linked list of height N.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
//   - Insert and Delete either succeed or leave the tree untouched
//
// Floating point NaN keys have no place in the ordering and must not
// be inserted.
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here. nil means the tree is empty.
	// don't return nodes directly - client could mutate keys or children!
	root *tree.Node[T]
}

// New returns a tree holding the single key k.
func New[T constraints.Ordered](k T) *Tree[T] {
	return &Tree[T]{
		root: tree.NodeOf(k),
	}
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns an error wrapping
// ErrDuplicateElement and the tree is unchanged.
func (t *Tree[T]) Insert(k T) error {
	if t.root == nil {
		t.root = tree.NodeOf(k)
		return nil
	}

	n, p := t.root, (*tree.Node[T])(nil)
	var cmp tree.Order

	for n != nil {
		cmp = tree.Compare(k, n.Key)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return fmt.Errorf("%w: %v", ErrDuplicateElement, k)
		default:
			panic("unreachable")
		}
	}

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = tree.NodeOf(k)
	case tree.Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = tree.NodeOf(k)
	default:
		panic("unreachable")
	}

	return nil
}

// InsertAll inserts each of ks in order, following the same rules as Insert.
// Duplicates are skipped rather than stopping the insertion.
// It returns the number of keys inserted, along with the error for
// the first duplicate encountered, if any.
func (t *Tree[T]) InsertAll(ks ...T) (inserted int, err error) {
	for _, k := range ks {
		if ierr := t.Insert(k); ierr != nil {
			if err == nil {
				err = ierr
			}
			continue
		}
		inserted++
	}

	return
}

// Delete removes k from the tree.
// If k is not in the tree, Delete returns an error wrapping
// ErrElementNotFound and the tree is unchanged.
//
// A node with two children takes the key of its in-order successor,
// the smallest key of its right subtree, and the successor is
// removed from the right subtree instead.
func (t *Tree[T]) Delete(k T) error {
	root, err := deleteFrom(t.root, k)
	if err != nil {
		return err
	}

	t.root = root
	return nil
}

// deleteFrom removes k from the subtree rooted at n and returns the
// subtree that should take n's place. Nothing is modified if k is
// not in the subtree.
func deleteFrom[T constraints.Ordered](n *tree.Node[T], k T) (*tree.Node[T], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrElementNotFound, k)
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		left, err := deleteFrom(n.Left, k)
		if err != nil {
			return n, err
		}
		n.Left = left
		return n, nil
	case tree.Greater:
		right, err := deleteFrom(n.Right, k)
		if err != nil {
			return n, err
		}
		n.Right = right
		return n, nil
	case tree.Equal:
		// handled below
	default:
		panic("unreachable")
	}

	switch {
	case n.Left == nil:
		return n.Right, nil
	case n.Right == nil:
		return n.Left, nil
	}

	successor := n.Right.Leftmost().Key
	right, err := deleteFrom(n.Right, successor)
	if err != nil {
		panic(fmt.Sprintf("successor %v vanished from right subtree", successor))
	}

	*n = tree.Node[T]{
		Key:   successor,
		Left:  n.Left,
		Right: right,
	}
	return n, nil
}

// Min returns the smallest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (k T, ok bool) {
	n := t.root.Leftmost()
	if n == nil {
		return
	}

	return n.Key, true
}

// Max returns the largest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (k T, ok bool) {
	n := t.root.Rightmost()
	if n == nil {
		return
	}

	return n.Key, true
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Without parent pointers, remember the last node where
	// the descent turned right: that is the closest smaller key so far.
	var less *tree.Node[T]
	for n := t.root; n != nil; {
		if tree.Compare(n.Key, k) == tree.Less {
			less, n = n, n.Right
		} else {
			n = n.Left
		}
	}

	if less == nil {
		return
	}
	return less.Key, true
}

// Greater returns the smallest key in the tree
// that is greater than k.
// If there is no key in the tree greater than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Greater(k T) (p T, ok bool) {
	var greater *tree.Node[T]
	for n := t.root; n != nil; {
		if tree.Compare(n.Key, k) == tree.Greater {
			greater, n = n, n.Left
		} else {
			n = n.Right
		}
	}

	if greater == nil {
		return
	}
	return greater.Key, true
}

// Height returns the number of nodes on the longest path from the root
// to a leaf. An empty tree has height 0 and a single key has height 1.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// Count returns the number of keys in the tree.
// This walks the whole tree.
func (t *Tree[T]) Count() int {
	return t.root.Count()
}

// IsEmpty returns true if the tree holds no keys.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
}

// Balanced returns true if the tree is as short as any tree
// holding the same number of keys could be.
func (t *Tree[T]) Balanced() bool {
	return t.Height() == idealHeight(t.Count())
}

// idealHeight is ceil(log2(n+1)), the height of a complete tree with n nodes.
func idealHeight(n int) int {
	return bits.Len(uint(n))
}

// Keys returns all keys in the tree in ascending order.
func (t *Tree[T]) Keys() []T {
	return chops.Collect[T](t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in ascending order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, 0)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, 0)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](t.InOrderIterator())
}
