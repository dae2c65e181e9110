package collections

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Collection is a growable, sparse, integer-indexed sequence of T.
//
// Appending extends the range upwards from the last index; prepending extends
// it downwards from the first index, so indices may be negative. Removing an
// item never renumbers the others: an index identifies the same slot for as
// long as that slot is present, and interior removals leave holes that
// enumeration skips.
//
// Unlike most collections in this style, Collection is mutated in place and
// mutating methods return the receiver for chaining. It is not safe for
// concurrent use.
//
//	c := collections.New("a", "b").Prepend("z") // -1:"z" 0:"a" 1:"b"
//	c.RemoveAt(0)                               // -1:"z" 1:"b"
//	c.ToArray()                                 // ["z", "b"]
//
// The zero value is an empty collection ready to use.
type Collection[T any] struct {
	items      map[int]T
	firstIndex int
	lastIndex  int
	equal      func(a, b T) bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection holding items at indices 0 … len(items)-1.
func New[T any](items ...T) *Collection[T] {
	return Empty[T]().Append(items...)
}

// From creates a Collection from a slice. The slice is not retained.
func From[T any](items []T) *Collection[T] {
	return Empty[T]().Append(items...)
}

// FromMap appends the values of m in ascending key order. The keys
// themselves are discarded: the result is always indexed 0 … len(m)-1.
// NaN keys sort first, as with [cmp.Compare].
func FromMap[K cmp.Ordered, T any](m map[K]T) *Collection[T] {
	type pair struct {
		key   K
		value T
	}
	pairs := make([]pair, 0, len(m))
	for key, value := range maps.All(m) {
		pairs = append(pairs, pair{key, value})
	}
	slices.SortFunc(pairs, func(a, b pair) int { return cmp.Compare(a.key, b.key) })

	c := Empty[T]()
	for _, p := range pairs {
		c.Append(p.value)
	}
	return c
}

// FromSeq appends every value yielded by seq, in yield order.
func FromSeq[T any](seq iter.Seq[T]) *Collection[T] {
	c := Empty[T]()
	for item := range seq {
		c.Append(item)
	}
	return c
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[int]T)}
}

// NewWithConfig is [New] with the settings in cfg applied.
func NewWithConfig[T any](cfg Config[T], items ...T) *Collection[T] {
	c := Empty[T]()
	c.equal = cfg.Equal
	return c.Append(items...)
}

// derive returns an empty collection sharing c's settings.
func (c *Collection[T]) derive() *Collection[T] {
	return &Collection[T]{items: make(map[int]T), equal: c.equal}
}

func (c *Collection[T]) equalFunc() func(a, b T) bool {
	if c.equal != nil {
		return c.equal
	}
	return strictEqual[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// FirstIndex returns the lower bound of the index range, or 0 when empty.
func (c *Collection[T]) FirstIndex() int { return c.firstIndex }

// LastIndex returns the upper bound of the index range, or 0 when empty.
func (c *Collection[T]) LastIndex() int { return c.lastIndex }

// Count returns the number of present indices. Holes are not counted, so
// Count may be smaller than LastIndex()-FirstIndex()+1.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection holds no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection holds at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	item, ok := c.items[index]
	return item, ok
}

// Has reports whether index is present.
func (c *Collection[T]) Has(index int) bool {
	_, ok := c.items[index]
	return ok
}

// Keys returns the present indices in ascending order.
func (c *Collection[T]) Keys() []int {
	keys := make([]int, 0, len(c.items))
	c.Enumerate(func(_ T, index int, _ *Collection[T]) Signal {
		keys = append(keys, index)
		return Continue
	})
	return keys
}

// Clone returns an independent copy with the same indices and range.
func (c *Collection[T]) Clone() *Collection[T] {
	out := c.derive()
	c.Enumerate(func(item T, index int, _ *Collection[T]) Signal {
		out.items[index] = item
		return Continue
	})
	out.firstIndex, out.lastIndex = c.firstIndex, c.lastIndex
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

// Append stores each item at the index after the current last index.
// On an empty collection the first item lands on index 0.
func (c *Collection[T]) Append(items ...T) *Collection[T] {
	if c.items == nil {
		c.items = make(map[int]T, len(items))
	}
	for _, item := range items {
		if len(c.items) > 0 {
			c.lastIndex++
		}
		c.items[c.lastIndex] = item
	}
	return c
}

// Prepend stores each item at the index before the current first index.
// Items grow outwards, so the first argument ends up closest to the old
// range and the last argument at the new first index:
//
//	collections.Empty[string]().Prepend("a", "b", "c") // 0:"a" -1:"b" -2:"c"
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	if c.items == nil {
		c.items = make(map[int]T, len(items))
	}
	for _, item := range items {
		if len(c.items) > 0 {
			c.firstIndex--
		}
		c.items[c.firstIndex] = item
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────────────────────────────────────

// Delete removes the item at index and reports whether it was present.
//
// Deleting the first index advances FirstIndex by one, deleting the last
// index retreats LastIndex by one, and any other deletion leaves a hole.
// Removing the final item resets the range to 0/0.
func (c *Collection[T]) Delete(index int) bool {
	if _, ok := c.items[index]; !ok {
		return false
	}
	delete(c.items, index)

	switch {
	case len(c.items) == 0:
		c.firstIndex, c.lastIndex = 0, 0
	case index == c.firstIndex:
		c.firstIndex++
	case index == c.lastIndex:
		c.lastIndex--
	}
	return true
}

// RemoveAt deletes the item at index, if present.
func (c *Collection[T]) RemoveAt(index int) *Collection[T] {
	c.Delete(index)
	return c
}

// RemoveRange deletes up to n present items starting at index, skipping
// holes. It stops after n deletions or once the last index is passed.
func (c *Collection[T]) RemoveRange(index, n int) *Collection[T] {
	remaining := n
	c.EnumerateFromWhile(index,
		func(T, int, *Collection[T]) bool { return remaining > 0 },
		func(_ T, i int, _ *Collection[T]) Signal {
			c.Delete(i)
			remaining--
			return Continue
		},
	)
	return c
}

// RemoveItem deletes the first index holding item.
func (c *Collection[T]) RemoveItem(item T) *Collection[T] {
	if index, ok := c.FindIndex(item); ok {
		c.Delete(index)
	}
	return c
}

// RemoveWhere deletes every index whose item satisfies fn.
func (c *Collection[T]) RemoveWhere(fn Predicate[T]) *Collection[T] {
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		if fn(item, index, col) {
			c.Delete(index)
		}
		return Continue
	})
	return c
}

// Clear removes every item and resets the range to 0/0.
func (c *Collection[T]) Clear() *Collection[T] {
	c.RemoveWhere(func(T, int, *Collection[T]) bool { return true })
	c.firstIndex, c.lastIndex = 0, 0
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Replace
// ─────────────────────────────────────────────────────────────────────────────

// ReplaceAt overwrites the item at index. Absent indices are left alone.
func (c *Collection[T]) ReplaceAt(index int, replacement T) *Collection[T] {
	if _, ok := c.items[index]; ok {
		c.items[index] = replacement
	}
	return c
}

// ReplaceItem overwrites the first index holding item with replacement.
func (c *Collection[T]) ReplaceItem(item, replacement T) *Collection[T] {
	if index, ok := c.FindIndex(item); ok {
		c.items[index] = replacement
	}
	return c
}

// ReplaceWhere replaces every item with fn(item, index, c), keeping indices.
func (c *Collection[T]) ReplaceWhere(fn Replacer[T]) *Collection[T] {
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		c.items[index] = fn(item, index, col)
		return Continue
	})
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection, indexed from 0, holding the items that
// satisfy fns[0].
//
// Called without a predicate it returns c itself, not a copy. Use
// [Collection.Clone] for an independent copy.
func (c *Collection[T]) Filter(fns ...Predicate[T]) *Collection[T] {
	if len(fns) == 0 || fns[0] == nil {
		return c
	}
	out := c.derive()
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		if fns[0](item, index, col) {
			out.Append(item)
		}
		return Continue
	})
	return out
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn Predicate[T]) *Collection[T] {
	return c.Filter(func(item T, index int, col *Collection[T]) bool {
		return !fn(item, index, col)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// Tap calls fn(c) for side-effects and returns c.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}
