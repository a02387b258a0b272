package utils

import (
	"fmt"
	"time"
)

// Entity identity prefixes. New-record identifiers are <prefix>-<unix-millis>;
// uniqueness is only as strong as timestamp granularity, which is acceptable for
// a single-operator registry.
const (
	BookingIDPrefix = "W"
	ViewingIDPrefix = "V"
	MenuIDPrefix    = "M"
	AddonIDPrefix   = "A"
)

// NewEntityID produces an identifier for a freshly created record, derived from
// the creation time.
func NewEntityID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}
