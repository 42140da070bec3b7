package netauto

import (
	"fmt"

	"github.com/rheard/netauto/internal/native"
	"github.com/rheard/netauto/internal/schema"
)

// ResolutionError reports a property key that names no known pattern,
// property, or nickname.
type ResolutionError = schema.ResolutionError

// AmbiguousPropertyError reports an unscoped property name that exists in
// more than one pattern.
type AmbiguousPropertyError = schema.AmbiguousPropertyError

// TranslationError reports a condition value whose type does not fit the
// target property.
type TranslationError = schema.TranslationError

// ErrUnsupported is returned when no native backend exists for this OS.
var ErrUnsupported = native.ErrUnsupported

// ErrPatternNotSupported is returned by pattern operations on elements
// that do not implement the pattern.
var ErrPatternNotSupported = native.ErrPatternNotSupported

// ElementNotFoundError is returned by FindElement when the search is
// exhausted with no matches. FindElements reports the same outcome as an
// empty slice instead.
type ElementNotFoundError struct {
	Condition string
	Searches  int
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("no element matching %s after %d searches", e.Condition, e.Searches)
}
