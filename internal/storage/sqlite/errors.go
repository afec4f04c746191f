package sqlite

import "errors"

var (
	// ErrItemNotFound indicates that no item has the given kind and ID.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidItemID indicates a non-positive item ID.
	ErrInvalidItemID = errors.New("invalid item ID")
)
