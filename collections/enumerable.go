package collections

import "iter"

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions when they only walk or query a
// collection, so callers can pass alternative implementations.
type Enumerable[T any] interface {
	// Count returns the number of present indices.
	Count() int

	// FirstIndex and LastIndex return the bounds of the index range.
	FirstIndex() int
	LastIndex() int

	// Get returns the item at index together with a presence flag.
	Get(index int) (T, bool)

	// Enumerate calls fn for every present index in ascending order until
	// fn returns Break.
	Enumerate(fn Enumerator[T]) Outcome

	// EnumerateReverse is Enumerate in descending order.
	EnumerateReverse(fn Enumerator[T]) Outcome

	// First and Last return the lowest and highest present item, optionally
	// matching fns[0].
	First(fns ...Predicate[T]) (T, bool)
	Last(fns ...Predicate[T]) (T, bool)

	// Values yields the present items in ascending index order.
	Values() iter.Seq[T]

	// ToArray returns the items as a dense slice.
	ToArray(customisers ...Replacer[T]) []T
}

var _ Enumerable[int] = (*Collection[int])(nil)
