package schema

import (
	"errors"
	"sort"
	"testing"
)

func TestResolve_UnscopedUnique(t *testing.T) {
	tests := []struct {
		key     string
		pattern string
		name    string
	}{
		{"name", ElementPattern, "Name"},
		{"class_name", ElementPattern, "ClassName"},
		{"automation_id", ElementPattern, "AutomationId"},
		{"process_id", ElementPattern, "ProcessId"},
		{"is_offscreen", ElementPattern, "IsOffscreen"},
		{"is_selected", "SelectionItem", "IsSelected"},
		{"toggle_state", "Toggle", "ToggleState"},
		{"window_visual_state", "Window", "WindowVisualState"},
		{"minimum", "RangeValue", "Minimum"},
		{"row_count", "Grid", "RowCount"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := Resolve(tt.key)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.key, err)
			}
			if p.Pattern != tt.pattern || p.Name != tt.name {
				t.Errorf("Resolve(%q) = %s.%s, want %s.%s",
					tt.key, p.Pattern, p.Name, tt.pattern, tt.name)
			}
		})
	}
}

func TestResolve_Nicknames(t *testing.T) {
	tests := []struct {
		key  string
		name string
	}{
		{"is_window", "IsWindowPatternAvailable"},
		{"is_invoke", "IsInvokePatternAvailable"},
		{"is_text", "IsTextPatternAvailable"},
		{"is_value", "IsValuePatternAvailable"},
		{"is_expand_collapse", "IsExpandCollapsePatternAvailable"},
		{"is_range_value", "IsRangeValuePatternAvailable"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := Resolve(tt.key)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.key, err)
			}
			if p.Pattern != ElementPattern || p.Name != tt.name {
				t.Errorf("Resolve(%q) = %s.%s, want %s.%s",
					tt.key, p.Pattern, p.Name, ElementPattern, tt.name)
			}
		})
	}
}

func TestResolve_AmbiguousUnscoped(t *testing.T) {
	for _, key := range []string{"value", "is_read_only"} {
		t.Run(key, func(t *testing.T) {
			_, err := Resolve(key)
			var ambig *AmbiguousPropertyError
			if !errors.As(err, &ambig) {
				t.Fatalf("Resolve(%q) = %v, want AmbiguousPropertyError", key, err)
			}
			want := []string{"RangeValue", "Value"}
			got := append([]string(nil), ambig.Patterns...)
			sort.Strings(got)
			if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
				t.Errorf("colliding patterns = %v, want %v", got, want)
			}
		})
	}
}

func TestResolve_Scoped(t *testing.T) {
	tests := []struct {
		key     string
		pattern string
		name    string
		kind    Kind
	}{
		{"value__value", "Value", "Value", KindString},
		{"range_value__value", "RangeValue", "Value", KindFloat},
		{"value__is_read_only", "Value", "IsReadOnly", KindBool},
		{"range_value__is_read_only", "RangeValue", "IsReadOnly", KindBool},
		{"element__name", ElementPattern, "Name", KindString},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := Resolve(tt.key)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.key, err)
			}
			if p.Pattern != tt.pattern || p.Name != tt.name || p.Kind != tt.kind {
				t.Errorf("Resolve(%q) = %s.%s kind %s, want %s.%s kind %s",
					tt.key, p.Pattern, p.Name, p.Kind, tt.pattern, tt.name, tt.kind)
			}
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	keys := []string{
		"no_such_prop",
		"window__no_such_prop",
		"no_such_pattern__name",
		"window__value", // Window has no Value property
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			_, err := Resolve(key)
			var res *ResolutionError
			if !errors.As(err, &res) {
				t.Errorf("Resolve(%q) = %v, want ResolutionError", key, err)
			}
		})
	}
}

// Every nickname must resolve, and the only cross-pattern collisions in the
// catalog must be the two shared by the Value and RangeValue patterns.
func TestCatalog_Integrity(t *testing.T) {
	for name := range Nicknames {
		if _, err := Resolve(PascalToSnake(name)); err != nil {
			t.Errorf("nickname %s does not resolve: %v", name, err)
		}
	}

	counts := map[string][]string{}
	for pattern, props := range Patterns {
		for name := range props {
			counts[name] = append(counts[name], pattern)
		}
	}
	var colliding []string
	for name, owners := range counts {
		if len(owners) > 1 {
			colliding = append(colliding, name)
		}
	}
	sort.Strings(colliding)
	if len(colliding) != 2 || colliding[0] != "IsReadOnly" || colliding[1] != "Value" {
		t.Errorf("colliding property names = %v, want [IsReadOnly Value]", colliding)
	}
}

func TestCheckValue(t *testing.T) {
	strProp := Patterns[ElementPattern]["Name"]
	boolProp := Patterns[ElementPattern]["IsEnabled"]
	floatProp := Patterns["RangeValue"]["Value"]
	intProp := Patterns["Grid"]["RowCount"]

	tests := []struct {
		name    string
		prop    Property
		value   any
		wantErr bool
	}{
		{"string ok", strProp, "Calculator", false},
		{"string mismatch", strProp, 7, true},
		{"bool ok", boolProp, true, false},
		{"bool mismatch", boolProp, "true", true},
		{"float ok", floatProp, 0.5, false},
		{"float from int", floatProp, 5, false},
		{"float mismatch", floatProp, "5", true},
		{"int ok", intProp, 3, false},
		{"int mismatch", intProp, 3.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckValue(tt.prop, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckValue(%s, %v) error = %v, wantErr %v",
					tt.prop.Name, tt.value, err, tt.wantErr)
			}
			if err != nil {
				var te *TranslationError
				if !errors.As(err, &te) {
					t.Errorf("error type = %T, want TranslationError", err)
				}
			}
		})
	}
}

func TestNameConversion(t *testing.T) {
	tests := []struct{ snake, pascal string }{
		{"class_name", "ClassName"},
		{"automation_id", "AutomationId"},
		{"range_value", "RangeValue"},
		{"is_offscreen", "IsOffscreen"},
		{"name", "Name"},
	}
	for _, tt := range tests {
		if got := SnakeToPascal(tt.snake); got != tt.pascal {
			t.Errorf("SnakeToPascal(%q) = %q, want %q", tt.snake, got, tt.pascal)
		}
		if got := PascalToSnake(tt.pascal); got != tt.snake {
			t.Errorf("PascalToSnake(%q) = %q, want %q", tt.pascal, got, tt.snake)
		}
	}
}
