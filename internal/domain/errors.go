package domain

import "errors"

// ErrNotFound is the shared store-level sentinel for a missing record.
// Modules translate it into their own error vocabulary.
var ErrNotFound = errors.New("record not found")
