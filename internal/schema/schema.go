// Package schema holds the static UI Automation property catalog: which
// patterns exist, which properties each pattern exposes, and the nickname
// table that maps shortcuts like is_window onto the verbose
// Is<Pattern>PatternAvailable element properties.
package schema

// Kind classifies a property's value type for condition building.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
	KindRect
)

// String returns a short name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindRect:
		return "rect"
	default:
		return "any"
	}
}

// Property identifies a single UI Automation property within a pattern.
type Property struct {
	ID      int    // UIA property ID (UIA_*PropertyId)
	Name    string // canonical property name, e.g. "ClassName"
	Pattern string // owning pattern name, e.g. "Window"; ElementPattern for identifiers
	Kind    Kind
}

// ElementPattern is the pseudo-pattern holding the element identifier
// properties that every automation element carries.
const ElementPattern = "Element"

// Patterns maps pattern name to its property set, keyed by canonical
// property name. Built once at init from the catalog below.
var Patterns = map[string]map[string]Property{}

// Nicknames maps shortcut property names (canonical form, e.g. "IsWindow")
// to the element property they stand for.
var Nicknames = map[string]Property{}

// patternOrder preserves the catalog declaration order for listings.
var patternOrder []string

// PatternNames returns all pattern names in catalog order.
func PatternNames() []string {
	out := make([]string, len(patternOrder))
	copy(out, patternOrder)
	return out
}

type propDef struct {
	id   int
	name string
	kind Kind
}

// catalog mirrors the System.Windows.Automation property set. Patterns
// without condition-usable properties (Invoke, Text, ScrollItem) are listed
// with empty property sets so pattern enumeration still covers them.
var catalog = []struct {
	pattern string
	props   []propDef
}{
	{ElementPattern, []propDef{
		{30000, "RuntimeId", KindAny},
		{30001, "BoundingRectangle", KindRect},
		{30002, "ProcessId", KindInt},
		{30003, "ControlType", KindInt},
		{30004, "LocalizedControlType", KindString},
		{30005, "Name", KindString},
		{30006, "AcceleratorKey", KindString},
		{30007, "AccessKey", KindString},
		{30008, "HasKeyboardFocus", KindBool},
		{30009, "IsKeyboardFocusable", KindBool},
		{30010, "IsEnabled", KindBool},
		{30011, "AutomationId", KindString},
		{30012, "ClassName", KindString},
		{30013, "HelpText", KindString},
		{30014, "ClickablePoint", KindAny},
		{30015, "Culture", KindInt},
		{30016, "IsControlElement", KindBool},
		{30017, "IsContentElement", KindBool},
		{30018, "LabeledBy", KindAny},
		{30019, "IsPassword", KindBool},
		{30020, "NativeWindowHandle", KindInt},
		{30021, "ItemType", KindString},
		{30022, "IsOffscreen", KindBool},
		{30023, "Orientation", KindInt},
		{30024, "FrameworkId", KindString},
		{30025, "IsRequiredForForm", KindBool},
		{30026, "ItemStatus", KindString},
		{30027, "IsDockPatternAvailable", KindBool},
		{30028, "IsExpandCollapsePatternAvailable", KindBool},
		{30029, "IsGridItemPatternAvailable", KindBool},
		{30030, "IsGridPatternAvailable", KindBool},
		{30031, "IsInvokePatternAvailable", KindBool},
		{30032, "IsMultipleViewPatternAvailable", KindBool},
		{30033, "IsRangeValuePatternAvailable", KindBool},
		{30034, "IsScrollPatternAvailable", KindBool},
		{30035, "IsScrollItemPatternAvailable", KindBool},
		{30036, "IsSelectionItemPatternAvailable", KindBool},
		{30037, "IsSelectionPatternAvailable", KindBool},
		{30038, "IsTablePatternAvailable", KindBool},
		{30039, "IsTableItemPatternAvailable", KindBool},
		{30040, "IsTextPatternAvailable", KindBool},
		{30041, "IsTogglePatternAvailable", KindBool},
		{30042, "IsTransformPatternAvailable", KindBool},
		{30043, "IsValuePatternAvailable", KindBool},
		{30044, "IsWindowPatternAvailable", KindBool},
	}},
	{"Invoke", nil},
	{"Value", []propDef{
		{30045, "Value", KindString},
		{30046, "IsReadOnly", KindBool},
	}},
	{"RangeValue", []propDef{
		{30047, "Value", KindFloat},
		{30048, "IsReadOnly", KindBool},
		{30049, "Minimum", KindFloat},
		{30050, "Maximum", KindFloat},
		{30051, "LargeChange", KindFloat},
		{30052, "SmallChange", KindFloat},
	}},
	{"Scroll", []propDef{
		{30053, "HorizontalScrollPercent", KindFloat},
		{30054, "HorizontalViewSize", KindFloat},
		{30055, "VerticalScrollPercent", KindFloat},
		{30056, "VerticalViewSize", KindFloat},
		{30057, "HorizontallyScrollable", KindBool},
		{30058, "VerticallyScrollable", KindBool},
	}},
	{"ScrollItem", nil},
	{"Selection", []propDef{
		{30059, "Selection", KindAny},
		{30060, "CanSelectMultiple", KindBool},
		{30061, "IsSelectionRequired", KindBool},
	}},
	{"Grid", []propDef{
		{30062, "RowCount", KindInt},
		{30063, "ColumnCount", KindInt},
	}},
	{"GridItem", []propDef{
		{30064, "Row", KindInt},
		{30065, "Column", KindInt},
		{30066, "RowSpan", KindInt},
		{30067, "ColumnSpan", KindInt},
		{30068, "ContainingGrid", KindAny},
	}},
	{"Dock", []propDef{
		{30069, "DockPosition", KindInt},
	}},
	{"ExpandCollapse", []propDef{
		{30070, "ExpandCollapseState", KindInt},
	}},
	{"MultipleView", []propDef{
		{30071, "CurrentView", KindInt},
		{30072, "SupportedViews", KindAny},
	}},
	{"Window", []propDef{
		{30073, "CanMaximize", KindBool},
		{30074, "CanMinimize", KindBool},
		{30075, "WindowVisualState", KindInt},
		{30076, "WindowInteractionState", KindInt},
		{30077, "IsModal", KindBool},
		{30078, "IsTopmost", KindBool},
	}},
	{"SelectionItem", []propDef{
		{30079, "IsSelected", KindBool},
		{30080, "SelectionContainer", KindAny},
	}},
	{"Table", []propDef{
		{30081, "RowHeaders", KindAny},
		{30082, "ColumnHeaders", KindAny},
		{30083, "RowOrColumnMajor", KindInt},
	}},
	{"TableItem", []propDef{
		{30084, "RowHeaderItems", KindAny},
		{30085, "ColumnHeaderItems", KindAny},
	}},
	{"Toggle", []propDef{
		{30086, "ToggleState", KindInt},
	}},
	{"Transform", []propDef{
		{30087, "CanMove", KindBool},
		{30088, "CanResize", KindBool},
		{30089, "CanRotate", KindBool},
	}},
	{"Text", nil},
}

// patternAvailableSuffix is stripped from Is<P>PatternAvailable properties
// to form nicknames, so is_window stands for is_window_pattern_available.
const patternAvailableSuffix = "PatternAvailable"

func init() {
	for _, entry := range catalog {
		patternOrder = append(patternOrder, entry.pattern)
		props := make(map[string]Property, len(entry.props))
		for _, d := range entry.props {
			props[d.name] = Property{
				ID:      d.id,
				Name:    d.name,
				Pattern: entry.pattern,
				Kind:    d.kind,
			}
		}
		Patterns[entry.pattern] = props
	}

	for name, prop := range Patterns[ElementPattern] {
		if n, ok := trimSuffix(name, patternAvailableSuffix); ok {
			Nicknames[n] = prop
		}
	}
}

func trimSuffix(s, suffix string) (string, bool) {
	if len(s) > len(suffix) && s[len(s)-len(suffix):] == suffix {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}
