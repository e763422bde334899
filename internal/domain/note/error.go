package note

import "errors"

var (
	// ErrNotFound covers both a missing note and a note owned by another
	// user; callers must not be able to tell the two apart.
	ErrNotFound      = errors.New("note not found")
	ErrTitleRequired = errors.New("note title is required")
	ErrQueryRequired = errors.New("search query is required")
)
