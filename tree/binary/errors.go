package binary

import "errors"

var (
	// ErrElementNotFound is returned by Delete when the key is not in the tree.
	ErrElementNotFound = errors.New("element not found")
	// ErrDuplicateElement is returned by Insert when the key is already in the tree.
	ErrDuplicateElement = errors.New("duplicate element")
)

// ErrAttemptsExhausted is returned by BuildRandomBalanced when it gives up.
var ErrAttemptsExhausted = errors.New("attempts exhausted")
