package netauto

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rheard/netauto/internal/native"
	"github.com/rheard/netauto/internal/schema"
)

// Props is the keyword surface of a query: snake_case property keys,
// optionally scoped as pattern__property, mapped to comparison values.
// Multiple entries are ANDed together.
type Props map[string]any

type condKind int

const (
	condTrue condKind = iota
	condFalse
	condLeaf
	condAnd
	condOr
)

// Condition is an immutable boolean predicate over element properties.
// Composition builds new nodes and never mutates existing ones; there is
// no negation.
type Condition struct {
	kind        condKind
	prop        schema.Property
	value       any
	left, right *Condition
}

var (
	condTrueSingleton  = &Condition{kind: condTrue}
	condFalseSingleton = &Condition{kind: condFalse}
)

// True returns the condition every element satisfies.
func True() *Condition { return condTrueSingleton }

// False returns the condition no element satisfies.
func False() *Condition { return condFalseSingleton }

// NewCondition resolves each property key and returns the AND of the
// resulting leaves. Keys are combined in sorted order so identical Props
// always yield the same tree. No keys yields True.
func NewCondition(props Props) (*Condition, error) {
	if len(props) == 0 {
		return True(), nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var c *Condition
	for _, key := range keys {
		prop, err := schema.Resolve(key)
		if err != nil {
			return nil, err
		}
		leaf := &Condition{kind: condLeaf, prop: prop, value: props[key]}
		if c == nil {
			c = leaf
		} else {
			c = c.And(leaf)
		}
	}
	return c, nil
}

// MustCondition is NewCondition for fixed queries known to be valid.
func MustCondition(props Props) *Condition {
	c, err := NewCondition(props)
	if err != nil {
		panic(err)
	}
	return c
}

// And returns a condition satisfied when both c and other are.
func (c *Condition) And(other *Condition) *Condition {
	return &Condition{kind: condAnd, left: c, right: other}
}

// Or returns a condition satisfied when either c or other is.
func (c *Condition) Or(other *Condition) *Condition {
	return &Condition{kind: condOr, left: c, right: other}
}

// And folds conditions left to right with AND. No arguments yields True.
func And(conds ...*Condition) *Condition {
	return fold(condAnd, conds)
}

// Or folds conditions left to right with OR. No arguments yields True.
func Or(conds ...*Condition) *Condition {
	return fold(condOr, conds)
}

func fold(kind condKind, conds []*Condition) *Condition {
	if len(conds) == 0 {
		return True()
	}
	c := conds[0]
	for _, next := range conds[1:] {
		c = &Condition{kind: kind, left: c, right: next}
	}
	return c
}

// String renders the tree for error messages and logs.
func (c *Condition) String() string {
	switch c.kind {
	case condTrue:
		return "true"
	case condFalse:
		return "false"
	case condLeaf:
		return fmt.Sprintf("%s.%s=%v", c.prop.Pattern, c.prop.Name, c.value)
	case condAnd:
		return "(" + c.left.String() + " AND " + c.right.String() + ")"
	case condOr:
		return "(" + c.left.String() + " OR " + c.right.String() + ")"
	default:
		return "invalid"
	}
}

// translate converts the tree into the backend's condition representation.
// Leaves are type-checked against the property kind; failures surface as
// *TranslationError.
func (c *Condition) translate(b native.Backend) (native.Condition, error) {
	switch c.kind {
	case condTrue:
		return b.TrueCondition(), nil
	case condFalse:
		return b.FalseCondition(), nil
	case condLeaf:
		if err := schema.CheckValue(c.prop, c.value); err != nil {
			return nil, err
		}
		return b.PropertyCondition(c.prop, c.value)
	case condAnd, condOr:
		left, err := c.left.translate(b)
		if err != nil {
			return nil, err
		}
		right, err := c.right.translate(b)
		if err != nil {
			return nil, err
		}
		if c.kind == condAnd {
			return b.AndCondition(left, right), nil
		}
		return b.OrCondition(left, right), nil
	default:
		return nil, fmt.Errorf("invalid condition node")
	}
}

// describe summarizes a props+condition pair for ElementNotFoundError.
func describe(props Props, where *Condition) string {
	var parts []string
	if len(props) > 0 {
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
		}
	}
	if where != nil {
		parts = append(parts, where.String())
	}
	if len(parts) == 0 {
		return "true"
	}
	return strings.Join(parts, " ")
}
