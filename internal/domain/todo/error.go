package todo

import "errors"

var (
	// ErrNotFound covers both a missing todo and a todo owned by another
	// user; callers must not be able to tell the two apart.
	ErrNotFound     = errors.New("todo not found")
	ErrTextRequired = errors.New("todo text is required")
)
