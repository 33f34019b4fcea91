package domain

import "fmt"

// StructuralError reports a broken tree invariant: a dangling reference, a
// missing identifier, or cyclic parentage. It is never repaired silently;
// callers abort the run and surface it.
type StructuralError struct {
	Entity string
	Field  string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural integrity: %s: %s: %s", e.Entity, e.Field, e.Reason)
}
