package i18n

import "fmt"

// StructureError reports a top-level catalog entry that is not a mapping.
type StructureError struct {
	Lang string
	Got  any
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid structure for language %q: expected map, got %T", e.Lang, e.Got)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}
