package models

import "errors"

// Sentinel errors returned by repositories and translated to HTTP status
// codes at the handler boundary only.
var (
	ErrNotFound = errors.New("item not found")
	ErrConflict = errors.New("item already exists")
)
