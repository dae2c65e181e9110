package collections

import (
	"iter"
	"math"
)

// Values returns a lazy, ascending sequence of the present items. Each call
// returns a fresh sequence, so it can be ranged over repeatedly.
//
//	for item := range c.Values() {
//	    fmt.Println(item)
//	}
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c.Enumerate(func(item T, _ int, _ *Collection[T]) Signal {
			if !yield(item) {
				return Break
			}
			return Continue
		})
	}
}

// Entries is like [Collection.Values] but yields index/item pairs.
func (c *Collection[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c.Enumerate(func(item T, index int, _ *Collection[T]) Signal {
			if !yield(index, item) {
				return Break
			}
			return Continue
		})
	}
}

// Iterator is a single-use, pull-style cursor over a collection's present
// items in ascending index order.
//
//	it := c.Iterator()
//	defer it.Close()
//	for it.Next() {
//	    fmt.Println(it.Index(), it.Value())
//	}
type Iterator[T any] struct {
	c     *Collection[T]
	next  int
	index int
	value T
	done  bool
}

// Iterator returns a new cursor positioned before the first present index.
func (c *Collection[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{c: c, next: c.firstIndex}
}

// Next advances to the next present index. It returns false once the range
// is exhausted, and keeps returning false afterwards.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	found, last := false, false
	it.c.EnumerateFrom(it.next, func(item T, index int, _ *Collection[T]) Signal {
		it.value, it.index, found = item, index, true
		if index == math.MaxInt {
			last = true
		} else {
			it.next = index + 1
		}
		return Break
	})
	if !found {
		it.finish()
		return false
	}
	// Nothing can follow math.MaxInt; stop before next wraps around.
	it.done = last
	return true
}

// Value returns the item Next moved to.
func (it *Iterator[T]) Value() T { return it.value }

// Index returns the index Next moved to.
func (it *Iterator[T]) Index() int { return it.index }

// Err always returns nil; walking an in-memory collection cannot fail.
func (it *Iterator[T]) Err() error { return nil }

// Close ends the iteration early.
func (it *Iterator[T]) Close() error {
	it.finish()
	return nil
}

func (it *Iterator[T]) finish() {
	var zero T
	it.value, it.done = zero, true
}
