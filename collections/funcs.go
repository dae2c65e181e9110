package collections

// This file contains package-level generic functions for operations whose
// result type differs from the collection's item type. Go methods cannot
// introduce their own type parameters, so these must be stand-alone:
//
//	labels := collections.ToArrayFunc(c, func(n, i int, _ *collections.Collection[int]) string {
//	    return fmt.Sprintf("%d:%d", i, n)
//	})

// Map returns a new Collection[U] holding fn(item, index, c) at every present
// index of c. Indices, holes and the range are preserved.
func Map[T, U any](c *Collection[T], fn Customiser[T, U]) *Collection[U] {
	out := Empty[U]()
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		out.items[index] = fn(item, index, col)
		return Continue
	})
	if out.Count() > 0 {
		out.firstIndex, out.lastIndex = c.firstIndex, c.lastIndex
	}
	return out
}

// Reduce folds the items of c in ascending index order.
//
//	sum := collections.Reduce(c, func(acc, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(carry U, item T, index int) U, initial U) U {
	result := initial
	c.Enumerate(func(item T, index int, _ *Collection[T]) Signal {
		result = fn(result, item, index)
		return Continue
	})
	return result
}

// ToArrayFunc returns fn applied to every item as a dense slice in ascending
// index order.
func ToArrayFunc[T, R any](c *Collection[T], fn Customiser[T, R]) []R {
	out := make([]R, 0, c.Count())
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		out = append(out, fn(item, index, col))
		return Continue
	})
	return out
}

// ToDictionary builds a map from key(item, index, c) to the item. When
// several items share a key, the one at the highest index wins.
//
//	byID := collections.ToDictionary(users,
//	    func(u User, _ int, _ *collections.Collection[User]) int { return u.ID })
func ToDictionary[T any, K comparable](c *Collection[T], key Customiser[T, K]) map[K]T {
	return ToDictionaryFunc[T, K, T](c, key, func(item T, _ int, _ *Collection[T]) T { return item })
}

// ToDictionaryFunc is [ToDictionary] with the map values produced by value.
func ToDictionaryFunc[T any, K comparable, V any](c *Collection[T], key Customiser[T, K], value Customiser[T, V]) map[K]V {
	out := make(map[K]V, c.Count())
	c.Enumerate(func(item T, index int, col *Collection[T]) Signal {
		out[key(item, index, col)] = value(item, index, col)
		return Continue
	})
	return out
}
