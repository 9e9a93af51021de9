package binary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))
	keys := sequence(num)

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	tr := &Tree[int]{}
	if _, err := tr.InsertAll(keys...); err != nil {
		panic(err)
	}

	return tr
}

// BuildRandomBalanced is like BuildRandom, but it keeps reshuffling
// the insert order until the resulting tree is Balanced.
// Along with the tree, the number of attempts it took is returned.
//
// Balanced trees get rare quickly as num grows, so the search gives up
// when ctx is done or, if maxAttempts > 0, after maxAttempts shuffles.
// The error then wraps ErrAttemptsExhausted or the context error.
func BuildRandomBalanced(ctx context.Context, num int, seed int64, maxAttempts int) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))
	keys := sequence(num)

	for attempts := 1; maxAttempts <= 0 || attempts <= maxAttempts; attempts++ {
		if err := ctx.Err(); err != nil {
			return nil, attempts - 1, fmt.Errorf("building balanced tree: %w", err)
		}

		rd.Shuffle(num, func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})

		tr := &Tree[int]{}
		if _, err := tr.InsertAll(keys...); err != nil {
			panic(err)
		}

		if tr.Balanced() {
			return tr, attempts, nil
		}
	}

	return nil, maxAttempts, fmt.Errorf("%w: no balanced tree after %d attempts",
		ErrAttemptsExhausted, maxAttempts)
}

func sequence(num int) []int {
	keys := make([]int, num)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// BuildFromPreOrder builds a binary search tree from its pre-order
// traversal. Every key is inserted after its ancestors, so inserting
// the keys in sequence recreates the same shape.
func BuildFromPreOrder[S ~[]T, T constraints.Ordered](pre S) (*Tree[T], error) {
	tr := &Tree[T]{}
	for _, k := range pre {
		if err := tr.Insert(k); err != nil {
			return nil, fmt.Errorf("pre-order traversal: %w", err)
		}
	}

	return tr, nil
}

// BuildFromPreAndInOrder recursively builds a binary tree
// from its pre- and in-order traversal.
// The in-order traversal of a binary search tree is strictly
// ascending; anything else is rejected.
func BuildFromPreAndInOrder[S ~[]T, T constraints.Ordered](pre, in S) (*Tree[T], error) {
	// Time O(N^2) Space O(N) (stack frames)
	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	for i := 1; i < len(in); i++ {
		if tree.Compare(in[i-1], in[i]) != tree.Less {
			return nil, fmt.Errorf("in-order traversal is not strictly ascending at index %d", i)
		}
	}

	root, err := buildFromPreAndInOrderVisit(pre, in)
	if err != nil {
		return nil, err
	}

	return &Tree[T]{root: root}, nil
}

func buildFromPreAndInOrderVisit[S ~[]T, T constraints.Ordered](pre, in S) (*tree.Node[T], error) {
	// len(pre) == len(in) at every level: the left part takes
	// xi keys from both and the right part takes the rest.
	if len(pre) == 0 {
		return nil, nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, fmt.Errorf("pre-order key %v not found in in-order traversal", x)
	}

	left, err := buildFromPreAndInOrderVisit(pre[1:xi+1], in[:xi])
	if err != nil {
		return nil, err
	}

	right, err := buildFromPreAndInOrderVisit(pre[xi+1:], in[xi+1:])
	if err != nil {
		return nil, err
	}

	return &tree.Node[T]{
		Key:   x,
		Left:  left,
		Right: right,
	}, nil
}
