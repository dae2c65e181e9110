package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrEmptyCollection is returned by [Collection.Single] when no item
	// matches.
	ErrEmptyCollection = errors.New("collections: the collection is empty")

	// ErrAmbiguousResult is returned by [Collection.Single] when more than
	// one item matches.
	ErrAmbiguousResult = errors.New("collections: the collection contains more than one item")

	// ErrInvalidIndex is returned when decoding a slot key that is not an
	// integer.
	ErrInvalidIndex = errors.New("collections: slot key is not an integer index")
)
