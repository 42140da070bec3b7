// Package native defines the seam between the portable query layer and the
// operating system's UI Automation subsystem. A concrete backend is
// registered by an OS-specific package via init(); everything above this
// package is platform independent.
package native

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rheard/netauto/internal/schema"
)

// TreeScope controls which relatives of a root element a search covers.
// Values match the UIA TreeScope enumeration.
type TreeScope uint32

const (
	ScopeElement     TreeScope = 1
	ScopeChildren    TreeScope = 2
	ScopeDescendants TreeScope = 4
	ScopeSubtree     TreeScope = 7
)

// String returns the scope name used by CLI flags and output.
func (s TreeScope) String() string {
	switch s {
	case ScopeElement:
		return "element"
	case ScopeChildren:
		return "children"
	case ScopeDescendants:
		return "descendants"
	case ScopeSubtree:
		return "subtree"
	default:
		return fmt.Sprintf("scope(%d)", uint32(s))
	}
}

// ParseScope converts a CLI flag value to a TreeScope.
func ParseScope(s string) (TreeScope, error) {
	switch s {
	case "element":
		return ScopeElement, nil
	case "children":
		return ScopeChildren, nil
	case "descendants", "":
		return ScopeDescendants, nil
	case "subtree":
		return ScopeSubtree, nil
	default:
		return 0, fmt.Errorf("unknown scope: %q (expected element, children, descendants, or subtree)", s)
	}
}

// WindowVisualState mirrors the UIA WindowVisualState enumeration.
type WindowVisualState int

const (
	WindowNormal    WindowVisualState = 0
	WindowMaximized WindowVisualState = 1
	WindowMinimized WindowVisualState = 2
)

// ToggleState mirrors the UIA ToggleState enumeration.
type ToggleState int

const (
	ToggleOff           ToggleState = 0
	ToggleOn            ToggleState = 1
	ToggleIndeterminate ToggleState = 2
)

// Rect is an element bounding rectangle in screen coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// ErrPatternNotSupported is returned by pattern operations when the target
// element does not implement the pattern.
var ErrPatternNotSupported = errors.New("pattern not supported by element")

// Condition is an opaque native search condition produced by a Backend's
// condition factory and consumed by its FindAll.
type Condition interface {
	NativeCondition()
}

// Element is a transient handle to a native automation node. The native
// subsystem owns the node; handles only reference it and may go stale at
// any time, in which case operations return errors.
type Element interface {
	// PropertyValue reads the current value of a property. Reading a
	// pattern property from an element that does not support the pattern
	// yields the property kind's zero value, as UIA does.
	PropertyValue(prop schema.Property) (any, error)

	// RuntimeID identifies the underlying node for equality checks.
	RuntimeID() string

	Invoke() error
	Expand() error
	Collapse() error
	Select() error
	Toggle() error
	SetValue(value string) error
	SetRangeValue(value float64) error
	ScrollIntoView() error
	DocumentText() (string, error)
	SetWindowState(state WindowVisualState) error
	CloseWindow() error
}

// Backend is the native UI Automation subsystem.
type Backend interface {
	// Root returns the desktop element.
	Root() (Element, error)

	// Focused returns the element with keyboard focus.
	Focused() (Element, error)

	TrueCondition() Condition
	FalseCondition() Condition

	// PropertyCondition builds a property comparison. Value type
	// mismatches surface as *schema.TranslationError.
	PropertyCondition(prop schema.Property, value any) (Condition, error)

	AndCondition(a, b Condition) Condition
	OrCondition(a, b Condition) Condition

	// FindAll issues one native search pass and returns every element
	// under root (per scope) satisfying cond. An empty result is not an
	// error.
	FindAll(root Element, scope TreeScope, cond Condition) ([]Element, error)
}

// ErrUnsupported is returned when no backend is registered for this OS.
var ErrUnsupported = fmt.Errorf("netauto is not supported on %s/%s; supported: windows", runtime.GOOS, runtime.GOARCH)

// NewBackendFunc is set by OS-specific packages via init().
// See internal/native/uiawindows for the Windows registration.
var NewBackendFunc func() (Backend, error)

// NewBackend returns the backend for the current OS.
func NewBackend() (Backend, error) {
	if NewBackendFunc == nil {
		return nil, ErrUnsupported
	}
	return NewBackendFunc()
}
