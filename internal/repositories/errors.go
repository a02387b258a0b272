package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")
)

// cloneStrings copies a string slice so callers never alias store-owned memory.
// A nil input stays nil to keep omitempty JSON behavior intact.
func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
