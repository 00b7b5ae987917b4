package store

import "errors"

// ErrCorruptSession reports a persisted record that could not be used.
// Load handles it internally; it only shows up in logs.
var ErrCorruptSession = errors.New("corrupt persisted session")
