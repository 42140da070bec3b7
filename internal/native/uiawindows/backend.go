//go:build windows

package uiawindows

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/go-ole/go-ole"

	"github.com/rheard/netauto/internal/native"
	"github.com/rheard/netauto/internal/schema"
)

// backend implements native.Backend over the IUIAutomation COM API.
type backend struct {
	auto *iUIAutomation
}

// rpcEChangedMode means COM was already initialized on this thread with a
// different apartment model, which is fine for our read-mostly use.
const rpcEChangedMode = 0x80010106

func newBackend() (*backend, error) {
	if err := ole.CoInitialize(0); err != nil {
		oleErr, ok := err.(*ole.OleError)
		if !ok || oleErr.Code() != rpcEChangedMode {
			return nil, fmt.Errorf("initialize COM: %w", err)
		}
	}
	unk, err := ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
	if err != nil {
		return nil, fmt.Errorf("create CUIAutomation: %w", err)
	}
	return &backend{auto: (*iUIAutomation)(unsafe.Pointer(unk))}, nil
}

func (b *backend) Root() (native.Element, error) {
	elem, err := b.auto.rootElement()
	if err != nil {
		return nil, err
	}
	return &element{raw: elem}, nil
}

func (b *backend) Focused() (native.Element, error) {
	elem, err := b.auto.focusedElement()
	if err != nil {
		return nil, err
	}
	return &element{raw: elem}, nil
}

// condition adapts a COM condition to native.Condition.
type condition struct {
	raw *iUIAutomationCondition
}

func (*condition) NativeCondition() {}

func (b *backend) TrueCondition() native.Condition {
	cond, err := b.auto.createTrueCondition()
	if err != nil {
		// CreateTrueCondition allocates a constant; failure means COM is
		// torn down and every later call will surface the real error.
		return &condition{}
	}
	return &condition{raw: cond}
}

func (b *backend) FalseCondition() native.Condition {
	cond, err := b.auto.createFalseCondition()
	if err != nil {
		return &condition{}
	}
	return &condition{raw: cond}
}

func (b *backend) PropertyCondition(prop schema.Property, value any) (native.Condition, error) {
	if err := schema.CheckValue(prop, value); err != nil {
		return nil, err
	}
	variant, err := toVariant(prop, value)
	if err != nil {
		return nil, err
	}
	defer variant.Clear()
	cond, err := b.auto.createPropertyCondition(prop.ID, variant)
	if err != nil {
		return nil, err
	}
	return &condition{raw: cond}, nil
}

func (b *backend) AndCondition(x, y native.Condition) native.Condition {
	cond, err := b.auto.createAndCondition(x.(*condition).raw, y.(*condition).raw)
	if err != nil {
		return &condition{}
	}
	return &condition{raw: cond}
}

func (b *backend) OrCondition(x, y native.Condition) native.Condition {
	cond, err := b.auto.createOrCondition(x.(*condition).raw, y.(*condition).raw)
	if err != nil {
		return &condition{}
	}
	return &condition{raw: cond}
}

func (b *backend) FindAll(root native.Element, scope native.TreeScope, cond native.Condition) ([]native.Element, error) {
	el, ok := root.(*element)
	if !ok {
		return nil, fmt.Errorf("foreign element handle %T", root)
	}
	c := cond.(*condition)
	if c.raw == nil {
		return nil, fmt.Errorf("native condition was not created")
	}

	arr, err := el.raw.findAll(uint32(scope), c.raw)
	if err != nil {
		return nil, err
	}
	if arr == nil {
		return nil, nil
	}
	defer arr.Release()

	n, err := arr.length()
	if err != nil {
		return nil, err
	}
	out := make([]native.Element, 0, n)
	for i := 0; i < n; i++ {
		raw, err := arr.element(i)
		if err != nil {
			return nil, err
		}
		out = append(out, &element{raw: raw})
	}
	return out, nil
}

// element implements native.Element over IUIAutomationElement.
type element struct {
	raw *iUIAutomationElement
}

func (e *element) RuntimeID() string {
	ids, err := e.raw.getRuntimeID()
	if err != nil {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%x", id)
	}
	return strings.Join(parts, ".")
}

func (e *element) PropertyValue(prop schema.Property) (any, error) {
	variant, err := e.raw.propertyValue(prop.ID)
	if err != nil {
		return nil, err
	}
	defer variant.Clear()
	return fromVariant(prop, &variant)
}

func (e *element) Invoke() error {
	p, err := e.pattern(patternInvoke, iidInvokePattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern0(p)
}

func (e *element) Expand() error {
	p, err := e.pattern(patternExpandCollapse, iidExpandCollapsePattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern0(p)
}

func (e *element) Collapse() error {
	p, err := e.pattern(patternExpandCollapse, iidExpandCollapsePattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern1(p)
}

func (e *element) Select() error {
	p, err := e.pattern(patternSelectionItem, iidSelectionItemPattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern0(p)
}

func (e *element) Toggle() error {
	p, err := e.pattern(patternToggle, iidTogglePattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern0(p)
}

func (e *element) SetValue(value string) error {
	p, err := e.pattern(patternValue, iidValuePattern)
	if err != nil {
		return err
	}
	defer p.Release()
	bstr := ole.SysAllocString(value)
	defer ole.SysFreeString(bstr)
	return callPattern0(p, uintptr(unsafe.Pointer(bstr)))
}

func (e *element) SetRangeValue(value float64) error {
	p, err := e.pattern(patternRangeValue, iidRangeValuePattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern0(p, uintptr(math.Float64bits(value)))
}

func (e *element) ScrollIntoView() error {
	p, err := e.pattern(patternScrollItem, iidScrollItemPattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern0(p)
}

func (e *element) DocumentText() (string, error) {
	p, err := e.pattern(patternText, iidTextPattern)
	if err != nil {
		return "", err
	}
	defer p.Release()
	return documentText(p)
}

func (e *element) SetWindowState(state native.WindowVisualState) error {
	p, err := e.pattern(patternWindow, iidWindowPattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern2(p, uintptr(int(state)))
}

func (e *element) CloseWindow() error {
	p, err := e.pattern(patternWindow, iidWindowPattern)
	if err != nil {
		return err
	}
	defer p.Release()
	return callPattern0(p)
}

func (e *element) pattern(patternID int, iid *ole.GUID) (*ole.IUnknown, error) {
	p, err := e.raw.currentPattern(patternID, iid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, native.ErrPatternNotSupported
	}
	return p, nil
}

// toVariant builds the VARIANT a property condition compares against.
func toVariant(prop schema.Property, value any) (*ole.VARIANT, error) {
	var v ole.VARIANT
	ole.VariantInit(&v)
	switch x := value.(type) {
	case string:
		v.VT = ole.VT_BSTR
		v.Val = int64(uintptr(unsafe.Pointer(ole.SysAllocStringLen(x))))
	case bool:
		v.VT = ole.VT_BOOL
		if x {
			v.Val = -1
		}
	case int:
		v.VT = ole.VT_I4
		v.Val = int64(x)
	case int32:
		v.VT = ole.VT_I4
		v.Val = int64(x)
	case int64:
		v.VT = ole.VT_I4
		v.Val = x
	case float32:
		v.VT = ole.VT_R8
		v.Val = int64(math.Float64bits(float64(x)))
	case float64:
		v.VT = ole.VT_R8
		v.Val = int64(math.Float64bits(x))
	default:
		return nil, &schema.TranslationError{Property: prop, Value: value}
	}
	// Integer values for float-kinded properties (RangeValue.Value) still
	// need a double on the wire.
	if prop.Kind == schema.KindFloat && v.VT == ole.VT_I4 {
		v.VT = ole.VT_R8
		v.Val = int64(math.Float64bits(float64(v.Val)))
	}
	return &v, nil
}

// fromVariant converts a property VARIANT back into a Go value.
func fromVariant(prop schema.Property, v *ole.VARIANT) (any, error) {
	switch v.VT {
	case ole.VT_EMPTY, ole.VT_NULL:
		return nil, nil
	case ole.VT_BSTR:
		return v.ToString(), nil
	case ole.VT_BOOL:
		return v.Val != 0, nil
	case ole.VT_I4:
		return int(int32(v.Val)), nil
	case ole.VT_I8:
		return int(v.Val), nil
	case ole.VT_R8:
		return math.Float64frombits(uint64(v.Val)), nil
	}
	if v.VT&ole.VT_ARRAY != 0 {
		conv := v.ToArray()
		if conv == nil {
			return nil, nil
		}
		values := conv.ToValueArray()
		if prop.Kind == schema.KindRect && len(values) == 4 {
			var coords [4]float64
			for i, raw := range values {
				f, ok := raw.(float64)
				if !ok {
					return values, nil
				}
				coords[i] = f
			}
			return native.Rect{X: coords[0], Y: coords[1], Width: coords[2], Height: coords[3]}, nil
		}
		return values, nil
	}
	return v.Value(), nil
}
