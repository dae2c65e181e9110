package collections

// matchAll is the predicate used when a caller passes none.
func matchAll[T any](T, int, *Collection[T]) bool { return true }

// matchTruthy rejects zero values and NaN.
func matchTruthy[T any](item T, _ int, _ *Collection[T]) bool { return truthy(item) }

func pick[T any](fns []Predicate[T], fallback Predicate[T]) Predicate[T] {
	if len(fns) == 0 || fns[0] == nil {
		return fallback
	}
	return fns[0]
}

// ─────────────────────────────────────────────────────────────────────────────
// Find
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the item at the lowest index satisfying fn.
// Returns the zero value and false when nothing matches.
func (c *Collection[T]) Find(fn Predicate[T]) (T, bool) {
	item, _, ok := c.find(false, fn)
	return item, ok
}

// FindLast returns the item at the highest index satisfying fn.
func (c *Collection[T]) FindLast(fn Predicate[T]) (T, bool) {
	item, _, ok := c.find(true, fn)
	return item, ok
}

// FindIndexBy returns the lowest index whose item satisfies fn.
func (c *Collection[T]) FindIndexBy(fn Predicate[T]) (int, bool) {
	_, index, ok := c.find(false, fn)
	return index, ok
}

// FindLastIndexBy returns the highest index whose item satisfies fn.
func (c *Collection[T]) FindLastIndexBy(fn Predicate[T]) (int, bool) {
	_, index, ok := c.find(true, fn)
	return index, ok
}

func (c *Collection[T]) find(reverse bool, fn Predicate[T]) (item T, index int, ok bool) {
	c.enumerate(reverse, c.firstIndex, c.lastIndex, nil, func(candidate T, i int, col *Collection[T]) Signal {
		if fn(candidate, i, col) {
			item, index, ok = candidate, i, true
			return Break
		}
		return Continue
	})
	return item, index, ok
}

// FindIndex returns the lowest index holding item.
//
// Items are compared with the collection's equality (see [Config]). The
// optional strict flag is accepted for callers that want to spell out the
// comparison mode; both modes currently use the same equality.
func (c *Collection[T]) FindIndex(item T, strict ...bool) (int, bool) {
	return c.FindIndexBy(c.sameAs(item))
}

// FindLastIndex returns the highest index holding item. See
// [Collection.FindIndex] for the comparison rules.
func (c *Collection[T]) FindLastIndex(item T, strict ...bool) (int, bool) {
	return c.FindLastIndexBy(c.sameAs(item))
}

func (c *Collection[T]) sameAs(item T) Predicate[T] {
	equal := c.equalFunc()
	return func(candidate T, _ int, _ *Collection[T]) bool {
		return equal(candidate, item)
	}
}

// Contains reports whether item is present at any index.
func (c *Collection[T]) Contains(item T) bool {
	_, ok := c.FindIndex(item)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// First / Last / Single
// ─────────────────────────────────────────────────────────────────────────────

// First returns the item at the lowest present index, optionally matching
// fns[0]. Returns the zero value and false when nothing qualifies.
func (c *Collection[T]) First(fns ...Predicate[T]) (T, bool) {
	return c.Find(pick(fns, matchAll[T]))
}

// Last returns the item at the highest present index, optionally matching
// fns[0].
func (c *Collection[T]) Last(fns ...Predicate[T]) (T, bool) {
	return c.FindLast(pick(fns, matchAll[T]))
}

// Single returns the only item, optionally matching fns[0].
// Returns [ErrEmptyCollection] when nothing matches and [ErrAmbiguousResult]
// when more than one item does.
func (c *Collection[T]) Single(fns ...Predicate[T]) (T, error) {
	var (
		found   T
		matches int
	)
	match := pick(fns, matchAll[T])
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		if !match(item, index, col) {
			return Continue
		}
		matches++
		if matches > 1 {
			return Break
		}
		found = item
		return Continue
	})

	switch matches {
	case 0:
		return found, ErrEmptyCollection
	case 1:
		return found, nil
	default:
		var zero T
		return zero, ErrAmbiguousResult
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregate predicates
// ─────────────────────────────────────────────────────────────────────────────

// Any reports whether at least one item satisfies fns[0]. Without a
// predicate it reports whether any item is truthy: zero values, nil and NaN
// are falsy. That includes a struct or array whose fields or elements are
// all zero; a non-nil empty slice or map is truthy.
func (c *Collection[T]) Any(fns ...Predicate[T]) bool {
	_, ok := c.FindIndexBy(pick(fns, matchTruthy[T]))
	return ok
}

// All reports whether every item satisfies fns[0] (truthiness by default,
// as described on [Collection.Any]).
// An empty collection satisfies All.
func (c *Collection[T]) All(fns ...Predicate[T]) bool {
	match := pick(fns, matchTruthy[T])
	return c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		if !match(item, index, col) {
			return Break
		}
		return Continue
	}) == Exhausted
}

// CountWhere returns the number of items satisfying fn.
func (c *Collection[T]) CountWhere(fn Predicate[T]) int {
	n := 0
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		if fn(item, index, col) {
			n++
		}
		return Continue
	})
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns the items as a dense slice in ascending index order,
// regardless of holes or negative indices. An optional customiser
// transforms each item; use [ToArrayFunc] to change the element type.
func (c *Collection[T]) ToArray(customisers ...Replacer[T]) []T {
	out := make([]T, 0, len(c.items))
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		if len(customisers) > 0 && customisers[0] != nil {
			item = customisers[0](item, index, col)
		}
		out = append(out, item)
		return Continue
	})
	return out
}

// ToSlice is an alias for [Collection.ToArray] without a customiser.
func (c *Collection[T]) ToSlice() []T { return c.ToArray() }
