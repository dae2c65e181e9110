package collections

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"github.com/shamaton/msgpack/v2"
)

// slots copies the present indices into a plain map. Range bookkeeping is
// not part of it.
func (c *Collection[T]) slots() map[int]T {
	out := make(map[int]T, len(c.items))
	c.Enumerate(func(item T, index int, _ *Collection[T]) Signal {
		out[index] = item
		return Continue
	})
	return out
}

// load replaces the contents of c with slots and derives the range from the
// smallest and largest index.
func (c *Collection[T]) load(slots map[int]T) {
	c.items = make(map[int]T, len(slots))
	c.firstIndex, c.lastIndex = 0, 0
	first := true
	for index, item := range slots {
		c.items[index] = item
		if first {
			c.firstIndex, c.lastIndex, first = index, index, false
			continue
		}
		c.firstIndex = min(c.firstIndex, index)
		c.lastIndex = max(c.lastIndex, index)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes the present slots as an object keyed by index:
//
//	{"-1":"z","0":"a","2":"c"}
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.slots())
}

// UnmarshalJSON replaces the contents of c with the slots of a JSON object
// produced by [Collection.MarshalJSON]. The range spans the smallest to the
// largest decoded index. Keys must be canonical decimal integers, so "01",
// "+1" and "-0" are rejected with [ErrInvalidIndex] and c is left unchanged.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("collections: decode json: %w", err)
	}
	slots := make(map[int]T, len(raw))
	for key, value := range raw {
		index, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(index) != key {
			return fmt.Errorf("%w: %q", ErrInvalidIndex, key)
		}
		var item T
		if err := json.Unmarshal(value, &item); err != nil {
			return fmt.Errorf("collections: decode json slot %d: %w", index, err)
		}
		slots[index] = item
	}
	c.load(slots)
	return nil
}

// ToJSON serialises the present slots; see [Collection.MarshalJSON].
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return c.MarshalJSON()
}

// String returns the JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.slots())
	}
	return string(b)
}

// Dump prints the collection to stdout and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	fmt.Println(c.String())
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// MessagePack
// ─────────────────────────────────────────────────────────────────────────────

// ToMsgpack encodes the present slots as a MessagePack map from integer
// index to item.
func (c *Collection[T]) ToMsgpack() ([]byte, error) {
	b, err := msgpack.Marshal(c.slots())
	if err != nil {
		return nil, fmt.Errorf("collections: encode msgpack: %w", err)
	}
	return b, nil
}

// FromMsgpack decodes a payload produced by [Collection.ToMsgpack], keeping
// the encoded indices.
func FromMsgpack[T any](data []byte) (*Collection[T], error) {
	var slots map[int]T
	if err := msgpack.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("collections: decode msgpack: %w", err)
	}
	c := Empty[T]()
	c.load(slots)
	return c, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether c and other hold equal items at the same indices.
// Range bookkeeping is ignored, so a collection whose first index points at
// a hole equals one that does not. Items are compared structurally,
// unexported fields included. A nil other is treated as empty.
func (c *Collection[T]) Equal(other *Collection[T]) bool {
	if other == nil {
		other = Empty[T]()
	}
	return cmp.Equal(c.slots(), other.slots(), cmp.Exporter(func(reflect.Type) bool { return true }))
}
