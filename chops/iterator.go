// Package chops bridges pull-style iterators to channels.
package chops

// Iterator describes a pull-style iterator over a data structure,
// such as the tree iterators. It must not require closing at the
// end of iteration, as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel on which items are delivered, in the
// order the underlying iterator yields them. The channel is closed
// when the iterator is exhausted or Stop is called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop abandons the iteration and lets the iterating goroutine exit.
// This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration:
//
//	co := CoIterate[T](t.InOrderIterator())
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either Stop is called
// or the iteration is finished. Following the usage above, the
// goroutine does not outlive the for-range loop.
//
// The goroutine reads from the iterator concurrently with the caller,
// so whatever the iterator walks over must not be mutated until the
// Items channel is closed.
//
// A nil iterator yields nothing. A typed nil pointer is handed to
// the goroutine as-is, so its methods must handle a nil receiver.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}

// Collect drains an iterator into a slice.
func Collect[T any](i Iterator[T]) []T {
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}
