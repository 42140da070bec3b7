// Package netauto is a convenience layer over the Windows UI Automation
// API. It exposes element discovery, property inspection, and pattern
// invocation through a query interface with composable boolean conditions:
//
//	desktop, err := netauto.Desktop()
//	calc, err := desktop.FindElement(netauto.Props{
//		"name":       "Calculator",
//		"class_name": "ApplicationFrameWindow",
//		"is_window":  true,
//	}, netauto.FindOptions{
//		Scope:       netauto.ScopeChildren,
//		Timeout:     5 * time.Second,
//		MinSearches: 2,
//	})
//
// Property keys are snake_case names of UI Automation properties. Names
// that exist in more than one pattern (for example "value", present in
// both the Value and RangeValue patterns) must be scoped with a pattern
// prefix, range_value__value, or the lookup fails. The native subsystem
// owns the element tree; this package only queries it and never holds
// state between calls.
package netauto

import (
	"go.uber.org/zap"

	"github.com/rheard/netauto/internal/native"
)

// TreeScope re-exports the native search scope for callers of Find*.
type TreeScope = native.TreeScope

const (
	ScopeElement     = native.ScopeElement
	ScopeChildren    = native.ScopeChildren
	ScopeDescendants = native.ScopeDescendants
	ScopeSubtree     = native.ScopeSubtree
)

// WindowVisualState re-exports the native window state enumeration.
type WindowVisualState = native.WindowVisualState

const (
	WindowNormal    = native.WindowNormal
	WindowMaximized = native.WindowMaximized
	WindowMinimized = native.WindowMinimized
)

// ToggleState re-exports the native toggle state enumeration.
type ToggleState = native.ToggleState

const (
	ToggleOff           = native.ToggleOff
	ToggleOn            = native.ToggleOn
	ToggleIndeterminate = native.ToggleIndeterminate
)

// Rect re-exports the native bounding rectangle.
type Rect = native.Rect

var log = zap.NewNop()

// SetLogger installs a logger for search diagnostics. The default discards
// everything.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}
