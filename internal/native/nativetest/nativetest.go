// Package nativetest provides an in-memory native.Backend backed by a
// scripted element tree. Tests build a tree, point the query layer at it,
// and drive mutations through the OnFind hook to exercise the pollers.
package nativetest

import (
	"errors"
	"fmt"

	"github.com/rheard/netauto/internal/native"
	"github.com/rheard/netauto/internal/schema"
)

// ErrGone is returned by operations on a node that has been removed.
var ErrGone = errors.New("element is no longer available")

// Node is a fake automation element. It implements native.Element.
type Node struct {
	props    map[string]any // keyed "Pattern.Name"
	children []*Node
	parent   *Node
	gone     bool
	id       string

	InvokeCount int
	LastValue   string
	Text        string

	// OnRead, when set, runs before every property read. Tests use it to
	// stage the node disappearing or changing mid-poll.
	OnRead func(n *Node)
}

var nextID int

// NewNode builds a node from resolver-style property keys, e.g.
// {"name": "Calculator", "is_window": true, "range_value__value": 0.5}.
// Invalid keys panic; fixtures are author errors, not runtime conditions.
func NewNode(props map[string]any) *Node {
	nextID++
	n := &Node{
		props: make(map[string]any, len(props)),
		id:    fmt.Sprintf("node-%d", nextID),
	}
	for key, val := range props {
		n.Set(key, val)
	}
	return n
}

// Set assigns a property through the resolver.
func (n *Node) Set(key string, val any) {
	prop, err := schema.Resolve(key)
	if err != nil {
		panic(fmt.Sprintf("nativetest: bad fixture key %q: %v", key, err))
	}
	n.props[prop.Pattern+"."+prop.Name] = val
}

// Add attaches children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Remove detaches the node from its parent and marks the handle stale.
func (n *Node) Remove() {
	n.gone = true
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (n *Node) RuntimeID() string { return n.id }

// Children exposes the node's children for test assertions.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) PropertyValue(prop schema.Property) (any, error) {
	if n.OnRead != nil {
		n.OnRead(n)
	}
	if n.gone {
		return nil, ErrGone
	}
	if v, ok := n.props[prop.Pattern+"."+prop.Name]; ok {
		return v, nil
	}
	return zeroOf(prop.Kind), nil
}

func zeroOf(k schema.Kind) any {
	switch k {
	case schema.KindString:
		return ""
	case schema.KindBool:
		return false
	case schema.KindInt:
		return 0
	case schema.KindFloat:
		return 0.0
	default:
		return nil
	}
}

func (n *Node) Invoke() error {
	if n.gone {
		return ErrGone
	}
	n.InvokeCount++
	return nil
}

func (n *Node) Expand() error {
	if n.gone {
		return ErrGone
	}
	n.Set("expand_collapse_state", 1)
	return nil
}

func (n *Node) Collapse() error {
	if n.gone {
		return ErrGone
	}
	n.Set("expand_collapse_state", 0)
	return nil
}

func (n *Node) Select() error {
	if n.gone {
		return ErrGone
	}
	n.Set("is_selected", true)
	return nil
}

func (n *Node) Toggle() error {
	if n.gone {
		return ErrGone
	}
	state, _ := n.props["Toggle.ToggleState"].(int)
	n.Set("toggle_state", (state+1)%2)
	return nil
}

func (n *Node) SetValue(value string) error {
	if n.gone {
		return ErrGone
	}
	n.LastValue = value
	n.Set("value__value", value)
	return nil
}

func (n *Node) SetRangeValue(value float64) error {
	if n.gone {
		return ErrGone
	}
	n.Set("range_value__value", value)
	return nil
}

func (n *Node) ScrollIntoView() error {
	if n.gone {
		return ErrGone
	}
	n.Set("is_offscreen", false)
	return nil
}

func (n *Node) DocumentText() (string, error) {
	if n.gone {
		return "", ErrGone
	}
	return n.Text, nil
}

func (n *Node) SetWindowState(state native.WindowVisualState) error {
	if n.gone {
		return ErrGone
	}
	n.Set("window_visual_state", int(state))
	return nil
}

func (n *Node) CloseWindow() error {
	if n.gone {
		return ErrGone
	}
	n.Remove()
	return nil
}

// predicate is the fake's native condition representation.
type predicate func(*Node) bool

func (predicate) NativeCondition() {}

// Backend implements native.Backend over a Node tree.
type Backend struct {
	root    *Node
	focused *Node

	// FindCalls counts FindAll invocations across the backend.
	FindCalls int

	// OnFind, when set, runs before each search pass. Tests use it to
	// stage elements appearing or disappearing between polls.
	OnFind func(b *Backend)
}

// NewBackend wraps a root node.
func NewBackend(root *Node) *Backend {
	return &Backend{root: root, focused: root}
}

// SetFocused marks the node returned by Focused.
func (b *Backend) SetFocused(n *Node) { b.focused = n }

// RootNode exposes the tree root for test mutation.
func (b *Backend) RootNode() *Node { return b.root }

func (b *Backend) Root() (native.Element, error)    { return b.root, nil }
func (b *Backend) Focused() (native.Element, error) { return b.focused, nil }

func (b *Backend) TrueCondition() native.Condition {
	return predicate(func(*Node) bool { return true })
}

func (b *Backend) FalseCondition() native.Condition {
	return predicate(func(*Node) bool { return false })
}

func (b *Backend) PropertyCondition(prop schema.Property, value any) (native.Condition, error) {
	if err := schema.CheckValue(prop, value); err != nil {
		return nil, err
	}
	return predicate(func(n *Node) bool {
		got, err := n.PropertyValue(prop)
		if err != nil {
			return false
		}
		return equalValues(got, value)
	}), nil
}

func (b *Backend) AndCondition(a, c native.Condition) native.Condition {
	pa, pc := a.(predicate), c.(predicate)
	return predicate(func(n *Node) bool { return pa(n) && pc(n) })
}

func (b *Backend) OrCondition(a, c native.Condition) native.Condition {
	pa, pc := a.(predicate), c.(predicate)
	return predicate(func(n *Node) bool { return pa(n) || pc(n) })
}

func (b *Backend) FindAll(root native.Element, scope native.TreeScope, cond native.Condition) ([]native.Element, error) {
	b.FindCalls++
	if b.OnFind != nil {
		b.OnFind(b)
	}

	node, ok := root.(*Node)
	if !ok {
		return nil, fmt.Errorf("foreign element handle %T", root)
	}
	if node.gone {
		return nil, ErrGone
	}
	match := cond.(predicate)

	var out []native.Element
	if scope == native.ScopeElement || scope == native.ScopeSubtree {
		if match(node) {
			out = append(out, node)
		}
	}
	switch scope {
	case native.ScopeChildren:
		for _, c := range node.children {
			if match(c) {
				out = append(out, c)
			}
		}
	case native.ScopeDescendants, native.ScopeSubtree:
		var walk func(*Node)
		walk = func(n *Node) {
			for _, c := range n.children {
				if match(c) {
					out = append(out, c)
				}
				walk(c)
			}
		}
		walk(node)
	}
	return out, nil
}

// equalValues compares property values with numeric widening, so a fixture
// int matches a query float and vice versa.
func equalValues(a, b any) bool {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
