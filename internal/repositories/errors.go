package repositories

import "errors"

// ErrNotFound is returned when a queried record does not exist. Callers
// should test for it with errors.Is since implementations wrap it with
// context about the missing record.
var ErrNotFound = errors.New("record not found")
