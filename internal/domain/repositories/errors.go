package repositories

import "errors"

// ErrNotFound is returned when a record does not exist for the
// requesting owner. Cross-owner lookups are indistinguishable from
// truly missing records.
var ErrNotFound = errors.New("record not found")
