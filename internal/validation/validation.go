// Package validation checks write-side payloads before they reach the
// store. The calculation engines never validate: they degrade
// gracefully on dirty data by design, so the write boundary is the
// only place malformed records can be rejected.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error carries field-specific validation messages for a request.
type Error struct {
	Fields map[string]string
}

// Error implements the error interface with a stable field ordering.
func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
