package sentinel

import "errors"

// Sentinel errors for storage facts. The employee store reports these as
// booleans; the service wraps the matching sentinel so callers can use
// errors.Is regardless of the coded error around it.
//
// - ErrNotFound: no occupied slot matches the lookup key
// - ErrCapacityExhausted: every slot is occupied, the insert was discarded
// - ErrConflict: an occupied slot already holds the id being inserted
var (
	ErrNotFound          = errors.New("not found")
	ErrCapacityExhausted = errors.New("capacity exhausted")
	ErrConflict          = errors.New("conflict")
)
