package schema

import (
	"fmt"
	"sort"
	"strings"
)

// ResolutionError reports a property key that names no known pattern,
// property, or nickname.
type ResolutionError struct {
	Key string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no automation property matches %q", e.Key)
}

// AmbiguousPropertyError reports an unscoped property name that exists in
// more than one pattern. The caller must scope it as pattern__property.
type AmbiguousPropertyError struct {
	Key      string
	Patterns []string
}

func (e *AmbiguousPropertyError) Error() string {
	var scoped []string
	for _, p := range e.Patterns {
		scoped = append(scoped, PascalToSnake(p)+"__"+propertyPart(e.Key))
	}
	return fmt.Sprintf("property %q exists in patterns %s; use one of: %s",
		e.Key, strings.Join(e.Patterns, ", "), strings.Join(scoped, ", "))
}

// TranslationError reports a condition value whose type does not fit the
// target property.
type TranslationError struct {
	Property Property
	Value    any
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("property %s.%s expects a %s value, got %T (%v)",
		e.Property.Pattern, e.Property.Name, e.Property.Kind, e.Value, e.Value)
}

func propertyPart(key string) string {
	if i := strings.Index(key, "__"); i >= 0 {
		return key[i+2:]
	}
	return key
}

// Resolve maps a user-supplied property key to its catalog entry.
//
// Keys are snake_case, optionally scoped as pattern__property
// (range_value__value). Unscoped keys resolve through the nickname table
// first, then uniquely across all patterns; a name present in more than one
// pattern fails with AmbiguousPropertyError rather than picking one.
func Resolve(key string) (Property, error) {
	if pat, prop, ok := strings.Cut(key, "__"); ok {
		patName := SnakeToPascal(pat)
		props, found := Patterns[patName]
		if !found {
			return Property{}, &ResolutionError{Key: key}
		}
		p, found := props[SnakeToPascal(prop)]
		if !found {
			return Property{}, &ResolutionError{Key: key}
		}
		return p, nil
	}

	name := SnakeToPascal(key)
	if p, ok := Nicknames[name]; ok {
		return p, nil
	}

	var matches []Property
	for _, props := range Patterns {
		if p, ok := props[name]; ok {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return Property{}, &ResolutionError{Key: key}
	case 1:
		return matches[0], nil
	default:
		patterns := make([]string, len(matches))
		for i, m := range matches {
			patterns[i] = m.Pattern
		}
		sort.Strings(patterns)
		return Property{}, &AmbiguousPropertyError{Key: key, Patterns: patterns}
	}
}

// CheckValue verifies that v is usable as a comparison value for p,
// returning a TranslationError otherwise. KindAny properties accept
// anything; numeric kinds accept the usual Go integer and float types.
func CheckValue(p Property, v any) error {
	ok := false
	switch p.Kind {
	case KindAny, KindRect:
		ok = true
	case KindString:
		_, ok = v.(string)
	case KindBool:
		_, ok = v.(bool)
	case KindInt:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			ok = true
		}
	case KindFloat:
		switch v.(type) {
		case float32, float64, int, int32, int64:
			ok = true
		}
	}
	if !ok {
		return &TranslationError{Property: p, Value: v}
	}
	return nil
}

// SnakeToPascal converts a snake_case key to the canonical PascalCase
// property naming: class_name -> ClassName, automation_id -> AutomationId.
func SnakeToPascal(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// PascalToSnake is the inverse conversion, used when reporting scoped
// suggestions: RangeValue -> range_value.
func PascalToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
