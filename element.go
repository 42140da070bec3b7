package netauto

import (
	"fmt"

	"github.com/rheard/netauto/internal/native"
	"github.com/rheard/netauto/internal/schema"
)

// Element is a transient reference to a node in the native automation
// tree. The native subsystem owns the node; an Element may go stale at any
// time (for example when its window closes), after which operations
// return errors.
type Element struct {
	backend native.Backend
	handle  native.Element
}

// Desktop returns the root element of the whole desktop.
func Desktop() (*Element, error) {
	backend, err := native.NewBackend()
	if err != nil {
		return nil, err
	}
	root, err := backend.Root()
	if err != nil {
		return nil, err
	}
	return &Element{backend: backend, handle: root}, nil
}

// Focused returns the element that currently has keyboard focus.
func Focused() (*Element, error) {
	backend, err := native.NewBackend()
	if err != nil {
		return nil, err
	}
	focused, err := backend.Focused()
	if err != nil {
		return nil, err
	}
	return &Element{backend: backend, handle: focused}, nil
}

// RuntimeID identifies the underlying native node; two Elements with equal
// RuntimeIDs reference the same node.
func (e *Element) RuntimeID() string {
	return e.handle.RuntimeID()
}

// Property resolves key the same way query conditions do and reads the
// current value from the native node.
func (e *Element) Property(key string) (any, error) {
	prop, err := schema.Resolve(key)
	if err != nil {
		return nil, err
	}
	return e.handle.PropertyValue(prop)
}

// Name returns the element's Name property.
func (e *Element) Name() (string, error) { return e.stringProp("name") }

// ClassName returns the element's ClassName property.
func (e *Element) ClassName() (string, error) { return e.stringProp("class_name") }

// AutomationID returns the element's AutomationId property.
func (e *Element) AutomationID() (string, error) { return e.stringProp("automation_id") }

// ProcessID returns the PID of the process owning the element.
func (e *Element) ProcessID() (int, error) { return e.intProp("process_id") }

// IsEnabled reports whether the element accepts interaction.
func (e *Element) IsEnabled() (bool, error) { return e.boolProp("is_enabled") }

// IsOffscreen reports whether the element is scrolled or hidden out of view.
func (e *Element) IsOffscreen() (bool, error) { return e.boolProp("is_offscreen") }

// IsSelected reports the SelectionItem pattern's selection state.
func (e *Element) IsSelected() (bool, error) { return e.boolProp("is_selected") }

// Value returns the Value pattern's current value.
func (e *Element) Value() (string, error) { return e.stringProp("value__value") }

// RangeValue returns the RangeValue pattern's current value.
func (e *Element) RangeValue() (float64, error) { return e.floatProp("range_value__value") }

// WindowVisualState returns the Window pattern's visual state.
func (e *Element) WindowVisualState() (WindowVisualState, error) {
	v, err := e.intProp("window_visual_state")
	return WindowVisualState(v), err
}

// ToggleState returns the Toggle pattern's state.
func (e *Element) ToggleState() (ToggleState, error) {
	v, err := e.intProp("toggle_state")
	return ToggleState(v), err
}

// BoundingRectangle returns the element's screen bounds.
func (e *Element) BoundingRectangle() (Rect, error) {
	v, err := e.Property("bounding_rectangle")
	if err != nil {
		return Rect{}, err
	}
	r, ok := v.(Rect)
	if !ok {
		return Rect{}, fmt.Errorf("bounding_rectangle: unexpected value %T", v)
	}
	return r, nil
}

// Invoke fires the Invoke pattern (presses a button).
func (e *Element) Invoke() error { return e.handle.Invoke() }

// Expand expands via the ExpandCollapse pattern (opens a menu).
func (e *Element) Expand() error { return e.handle.Expand() }

// Collapse collapses via the ExpandCollapse pattern.
func (e *Element) Collapse() error { return e.handle.Collapse() }

// Select selects via the SelectionItem pattern (picks a radio button).
func (e *Element) Select() error { return e.handle.Select() }

// Toggle flips the Toggle pattern's state.
func (e *Element) Toggle() error { return e.handle.Toggle() }

// SetValue writes through the Value pattern.
func (e *Element) SetValue(value string) error { return e.handle.SetValue(value) }

// SetRangeValue writes through the RangeValue pattern.
func (e *Element) SetRangeValue(value float64) error { return e.handle.SetRangeValue(value) }

// ScrollIntoView scrolls the element into view via the ScrollItem pattern.
func (e *Element) ScrollIntoView() error { return e.handle.ScrollIntoView() }

// DocumentText returns the Text pattern's document range text.
func (e *Element) DocumentText() (string, error) { return e.handle.DocumentText() }

// SetWindowState changes the Window pattern's visual state.
func (e *Element) SetWindowState(state WindowVisualState) error {
	return e.handle.SetWindowState(state)
}

// Maximize maximizes the element's window.
func (e *Element) Maximize() error { return e.SetWindowState(WindowMaximized) }

// Minimize minimizes the element's window.
func (e *Element) Minimize() error { return e.SetWindowState(WindowMinimized) }

// Restore returns the element's window to its normal state.
func (e *Element) Restore() error { return e.SetWindowState(WindowNormal) }

// Close closes the element's window via the Window pattern.
func (e *Element) Close() error { return e.handle.CloseWindow() }

func (e *Element) stringProp(key string) (string, error) {
	v, err := e.Property(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected value %T", key, v)
	}
	return s, nil
}

func (e *Element) boolProp(key string) (bool, error) {
	v, err := e.Property(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: unexpected value %T", key, v)
	}
	return b, nil
}

func (e *Element) intProp(key string) (int, error) {
	v, err := e.Property(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("%s: unexpected value %T", key, v)
}

func (e *Element) floatProp(key string) (float64, error) {
	v, err := e.Property(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%s: unexpected value %T", key, v)
}
