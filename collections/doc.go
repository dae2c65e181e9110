// Package collections provides [Collection][T], a generic array-like
// container whose index range can grow in both directions and which keeps
// indices stable across removals.
//
// # Overview
//
// Appending extends the range above the last index; prepending extends it
// below the first index, so indices may go negative. Removing an item leaves
// a hole instead of shifting its neighbours:
//
//	c := collections.New("a", "b", "c") // 0:"a" 1:"b" 2:"c"
//	c.Prepend("z")                      // -1:"z"
//	c.RemoveAt(1)                       // hole at 1
//	c.ToArray()                         // ["z", "a", "c"]
//	c.FirstIndex(), c.LastIndex()       // -1, 2
//
// # Enumeration
//
// Every query and bulk mutation is built on one walk over a range of
// indices. Callbacks receive (item, index, collection) and return a
// [Signal]; returning [Break] stops the walk. Guarded variants
// (EnumerateWhile and friends) stop as soon as a guard predicate fails. The
// [Outcome] returned by each walk says which of the two happened, or that
// the range was exhausted:
//
//	c.EnumerateReverse(func(s string, i int, _ *collections.Collection[string]) collections.Signal {
//	    if s == "a" {
//	        return collections.Break
//	    }
//	    return collections.Continue
//	})
//
// A callback may delete the index it is visiting; the walk checks presence
// right before each visit.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [Reduce], [ToArrayFunc], [ToDictionary], [ToDictionaryFunc].
//
// # Serialisation
//
// A collection marshals to JSON ([Collection.MarshalJSON]) and MessagePack
// ([Collection.ToMsgpack]) as a map from index to item. Range bookkeeping is
// never part of the payload; it is derived again when decoding.
//
// # Concurrency
//
// Collection is mutated in place and is not safe for concurrent use.
// Serialise access externally when sharing one between goroutines.
package collections
