package books

import "errors"

var (
	ErrNotFound = errors.New("book not found")
	// ErrInternal means a write did not land in the store.
	ErrInternal = errors.New("book store integrity check failed")
)
