package collections

// Signal is returned by an [Enumerator] to tell the walk whether to go on.
type Signal uint8

const (
	// Continue moves the walk on to the next present index.
	Continue Signal = iota

	// Break halts the walk immediately. No further index is visited, even
	// if present.
	Break
)

// Outcome reports how an enumeration ended.
type Outcome uint8

const (
	// Exhausted means every present index in the range was visited.
	Exhausted Outcome = iota

	// Broken means the callback returned [Break].
	Broken

	// Guarded means the guard predicate returned false.
	Guarded
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Exhausted:
		return "exhausted"
	case Broken:
		return "broken"
	case Guarded:
		return "guarded"
	default:
		return "unknown"
	}
}

// Enumerator is called once per present index during a walk.
type Enumerator[T any] func(item T, index int, c *Collection[T]) Signal

// Predicate tests a present item. It is used for filters, finders, removal
// rules and walk guards.
type Predicate[T any] func(item T, index int, c *Collection[T]) bool

// Replacer returns the item that takes the place of item at index.
type Replacer[T any] func(item T, index int, c *Collection[T]) T

// Customiser derives a value of type R from a present item.
type Customiser[T, R any] func(item T, index int, c *Collection[T]) R

// enumerate walks [lo, hi] clamped to the current range, ascending or
// descending, and is the only place that steps through storage.
//
// Presence is checked right before each visit, so fn may delete the index
// it is visiting (or any other) without disturbing the rest of the walk.
// The bounds are fixed when the walk starts.
func (c *Collection[T]) enumerate(reverse bool, lo, hi int, guard Predicate[T], fn Enumerator[T]) Outcome {
	if len(c.items) == 0 {
		return Exhausted
	}
	lo = max(lo, c.firstIndex)
	hi = min(hi, c.lastIndex)
	if lo > hi {
		return Exhausted
	}

	start, stop, step := lo, hi, 1
	if reverse {
		start, stop, step = hi, lo, -1
	}
	for index := start; ; index += step {
		if item, ok := c.items[index]; ok {
			if guard != nil && !guard(item, index, c) {
				return Guarded
			}
			if fn(item, index, c) == Break {
				return Broken
			}
		}
		if index == stop {
			return Exhausted
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Forward
// ─────────────────────────────────────────────────────────────────────────────

// Enumerate calls fn for every present index in ascending order.
func (c *Collection[T]) Enumerate(fn Enumerator[T]) Outcome {
	return c.enumerate(false, c.firstIndex, c.lastIndex, nil, fn)
}

// EnumerateBetween calls fn for every present index in [lo, hi], ascending.
func (c *Collection[T]) EnumerateBetween(lo, hi int, fn Enumerator[T]) Outcome {
	return c.enumerate(false, lo, hi, nil, fn)
}

// EnumerateFrom walks from lo up to the last index.
func (c *Collection[T]) EnumerateFrom(lo int, fn Enumerator[T]) Outcome {
	return c.enumerate(false, lo, c.lastIndex, nil, fn)
}

// EnumerateTo walks from the first index up to hi.
func (c *Collection[T]) EnumerateTo(hi int, fn Enumerator[T]) Outcome {
	return c.enumerate(false, c.firstIndex, hi, nil, fn)
}

// EnumerateWhile is [Collection.Enumerate] with a guard: the walk stops,
// reporting [Guarded], at the first present item for which guard is false.
// The guard runs before fn on each item.
func (c *Collection[T]) EnumerateWhile(guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(false, c.firstIndex, c.lastIndex, guard, fn)
}

// EnumerateBetweenWhile is [Collection.EnumerateBetween] with a guard.
func (c *Collection[T]) EnumerateBetweenWhile(lo, hi int, guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(false, lo, hi, guard, fn)
}

// EnumerateFromWhile is [Collection.EnumerateFrom] with a guard.
func (c *Collection[T]) EnumerateFromWhile(lo int, guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(false, lo, c.lastIndex, guard, fn)
}

// EnumerateToWhile is [Collection.EnumerateTo] with a guard.
func (c *Collection[T]) EnumerateToWhile(hi int, guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(false, c.firstIndex, hi, guard, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reverse
// ─────────────────────────────────────────────────────────────────────────────

// EnumerateReverse calls fn for every present index in descending order.
func (c *Collection[T]) EnumerateReverse(fn Enumerator[T]) Outcome {
	return c.enumerate(true, c.firstIndex, c.lastIndex, nil, fn)
}

// EnumerateBetweenReverse walks [lo, hi] from hi down to lo.
func (c *Collection[T]) EnumerateBetweenReverse(lo, hi int, fn Enumerator[T]) Outcome {
	return c.enumerate(true, lo, hi, nil, fn)
}

// EnumerateFromReverse walks from hi down to the first index.
func (c *Collection[T]) EnumerateFromReverse(hi int, fn Enumerator[T]) Outcome {
	return c.enumerate(true, c.firstIndex, hi, nil, fn)
}

// EnumerateToReverse walks from the last index down to lo.
func (c *Collection[T]) EnumerateToReverse(lo int, fn Enumerator[T]) Outcome {
	return c.enumerate(true, lo, c.lastIndex, nil, fn)
}

// EnumerateReverseWhile is [Collection.EnumerateReverse] with a guard.
func (c *Collection[T]) EnumerateReverseWhile(guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(true, c.firstIndex, c.lastIndex, guard, fn)
}

// EnumerateBetweenReverseWhile is [Collection.EnumerateBetweenReverse] with a
// guard.
func (c *Collection[T]) EnumerateBetweenReverseWhile(lo, hi int, guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(true, lo, hi, guard, fn)
}

// EnumerateFromReverseWhile is [Collection.EnumerateFromReverse] with a guard.
func (c *Collection[T]) EnumerateFromReverseWhile(hi int, guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(true, c.firstIndex, hi, guard, fn)
}

// EnumerateToReverseWhile is [Collection.EnumerateToReverse] with a guard.
func (c *Collection[T]) EnumerateToReverseWhile(lo int, guard Predicate[T], fn Enumerator[T]) Outcome {
	return c.enumerate(true, lo, c.lastIndex, guard, fn)
}
