//go:build windows

package uiawindows

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// COM identifiers from UIAutomationClient.idl.
var (
	clsidCUIAutomation = ole.NewGUID("{FF48DBA4-60EF-4201-AA87-54103EEF594E}")

	iidIUIAutomation             = ole.NewGUID("{30CBE57D-D9D0-452A-AB13-7AC5AC4825EE}")
	iidIUIAutomationElement      = ole.NewGUID("{D22108AA-8AC5-49A5-837B-37BBB3D7591E}")
	iidIUIAutomationElementArray = ole.NewGUID("{14314595-B4BC-4055-95F2-58F2E42C9855}")

	iidInvokePattern         = ole.NewGUID("{FB377FBE-8EA6-46D5-9C73-6499642D3059}")
	iidValuePattern          = ole.NewGUID("{A94CD8B1-0844-4CD6-9D2D-640537AB39E9}")
	iidRangeValuePattern     = ole.NewGUID("{59213F4F-7346-49E5-B120-80555987A148}")
	iidWindowPattern         = ole.NewGUID("{0FAEF453-9208-43EF-BBB2-3B485177864F}")
	iidExpandCollapsePattern = ole.NewGUID("{619BE086-1F4E-4EE4-BAFA-210128738730}")
	iidSelectionItemPattern  = ole.NewGUID("{A8EFA66A-0FDA-421A-9194-38021F3578EA}")
	iidTogglePattern         = ole.NewGUID("{94CF8058-9B8D-4AB9-8BFD-4CD0A33C8C70}")
	iidScrollItemPattern     = ole.NewGUID("{B488300F-D015-4F19-9C29-BB595E3645EF}")
	iidTextPattern           = ole.NewGUID("{32EBA289-3583-42C9-9C59-3B6D9A1E9B6A}")
)

// UIA_*PatternId constants.
const (
	patternInvoke         = 10000
	patternValue          = 10002
	patternRangeValue     = 10003
	patternExpandCollapse = 10005
	patternWindow         = 10009
	patternSelectionItem  = 10010
	patternText           = 10014
	patternToggle         = 10015
	patternScrollItem     = 10017
)

// call performs a raw vtable method call.
func call(method uintptr, args ...uintptr) error {
	hr, _, _ := syscall.SyscallN(method, args...)
	if hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

// iUIAutomation wraps the IUIAutomation automation root object.
type iUIAutomation struct{ ole.IUnknown }

type iUIAutomationVtbl struct {
	ole.IUnknownVtbl
	CompareElements                  uintptr
	CompareRuntimeIds                uintptr
	GetRootElement                   uintptr
	ElementFromHandle                uintptr
	ElementFromPoint                 uintptr
	GetFocusedElement                uintptr
	GetRootElementBuildCache         uintptr
	ElementFromHandleBuildCache      uintptr
	ElementFromPointBuildCache       uintptr
	GetFocusedElementBuildCache      uintptr
	CreateTreeWalker                 uintptr
	GetControlViewWalker             uintptr
	GetContentViewWalker             uintptr
	GetRawViewWalker                 uintptr
	GetRawViewCondition              uintptr
	GetControlViewCondition          uintptr
	GetContentViewCondition          uintptr
	CreateCacheRequest               uintptr
	CreateTrueCondition              uintptr
	CreateFalseCondition             uintptr
	CreatePropertyCondition          uintptr
	CreatePropertyConditionEx        uintptr
	CreateAndCondition               uintptr
	CreateAndConditionFromArray      uintptr
	CreateAndConditionFromNativeArray uintptr
	CreateOrCondition                uintptr
	CreateOrConditionFromArray       uintptr
	CreateOrConditionFromNativeArray uintptr
	CreateNotCondition               uintptr
}

func (v *iUIAutomation) vtbl() *iUIAutomationVtbl {
	return (*iUIAutomationVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iUIAutomation) rootElement() (*iUIAutomationElement, error) {
	var elem *iUIAutomationElement
	err := call(v.vtbl().GetRootElement,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&elem)))
	return elem, err
}

func (v *iUIAutomation) focusedElement() (*iUIAutomationElement, error) {
	var elem *iUIAutomationElement
	err := call(v.vtbl().GetFocusedElement,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&elem)))
	return elem, err
}

func (v *iUIAutomation) createTrueCondition() (*iUIAutomationCondition, error) {
	var cond *iUIAutomationCondition
	err := call(v.vtbl().CreateTrueCondition,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&cond)))
	return cond, err
}

func (v *iUIAutomation) createFalseCondition() (*iUIAutomationCondition, error) {
	var cond *iUIAutomationCondition
	err := call(v.vtbl().CreateFalseCondition,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&cond)))
	return cond, err
}

func (v *iUIAutomation) createPropertyCondition(propertyID int, value *ole.VARIANT) (*iUIAutomationCondition, error) {
	var cond *iUIAutomationCondition
	err := call(v.vtbl().CreatePropertyCondition,
		uintptr(unsafe.Pointer(v)),
		uintptr(propertyID),
		uintptr(unsafe.Pointer(value)),
		uintptr(unsafe.Pointer(&cond)))
	return cond, err
}

func (v *iUIAutomation) createAndCondition(a, b *iUIAutomationCondition) (*iUIAutomationCondition, error) {
	var cond *iUIAutomationCondition
	err := call(v.vtbl().CreateAndCondition,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(b)),
		uintptr(unsafe.Pointer(&cond)))
	return cond, err
}

func (v *iUIAutomation) createOrCondition(a, b *iUIAutomationCondition) (*iUIAutomationCondition, error) {
	var cond *iUIAutomationCondition
	err := call(v.vtbl().CreateOrCondition,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(b)),
		uintptr(unsafe.Pointer(&cond)))
	return cond, err
}

// iUIAutomationCondition is an opaque native condition.
type iUIAutomationCondition struct{ ole.IUnknown }

// iUIAutomationElement wraps a native automation element.
type iUIAutomationElement struct{ ole.IUnknown }

type iUIAutomationElementVtbl struct {
	ole.IUnknownVtbl
	SetFocus                   uintptr
	GetRuntimeId               uintptr
	FindFirst                  uintptr
	FindAll                    uintptr
	FindFirstBuildCache        uintptr
	FindAllBuildCache          uintptr
	BuildUpdatedCache          uintptr
	GetCurrentPropertyValue    uintptr
	GetCurrentPropertyValueEx  uintptr
	GetCachedPropertyValue     uintptr
	GetCachedPropertyValueEx   uintptr
	GetCurrentPatternAs        uintptr
	GetCachedPatternAs         uintptr
	GetCurrentPattern          uintptr
	GetCachedPattern           uintptr
	GetCachedParent            uintptr
	GetCachedChildren          uintptr
}

func (v *iUIAutomationElement) vtbl() *iUIAutomationElementVtbl {
	return (*iUIAutomationElementVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iUIAutomationElement) findAll(scope uint32, cond *iUIAutomationCondition) (*iUIAutomationElementArray, error) {
	var arr *iUIAutomationElementArray
	err := call(v.vtbl().FindAll,
		uintptr(unsafe.Pointer(v)),
		uintptr(scope),
		uintptr(unsafe.Pointer(cond)),
		uintptr(unsafe.Pointer(&arr)))
	return arr, err
}

func (v *iUIAutomationElement) propertyValue(propertyID int) (ole.VARIANT, error) {
	var value ole.VARIANT
	ole.VariantInit(&value)
	err := call(v.vtbl().GetCurrentPropertyValue,
		uintptr(unsafe.Pointer(v)),
		uintptr(propertyID),
		uintptr(unsafe.Pointer(&value)))
	return value, err
}

func (v *iUIAutomationElement) getRuntimeID() ([]int32, error) {
	var sa *ole.SafeArray
	err := call(v.vtbl().GetRuntimeId,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&sa)))
	if err != nil {
		return nil, err
	}
	conv := &ole.SafeArrayConversion{Array: sa}
	defer conv.Release()
	var ids []int32
	for _, v := range conv.ToValueArray() {
		if n, ok := v.(int32); ok {
			ids = append(ids, n)
		}
	}
	return ids, nil
}

// currentPattern returns nil without error when the pattern is not
// supported, matching GetCurrentPattern's NULL-out contract.
func (v *iUIAutomationElement) currentPattern(patternID int, iid *ole.GUID) (*ole.IUnknown, error) {
	var unk *ole.IUnknown
	err := call(v.vtbl().GetCurrentPattern,
		uintptr(unsafe.Pointer(v)),
		uintptr(patternID),
		uintptr(unsafe.Pointer(&unk)))
	if err != nil {
		return nil, err
	}
	if unk == nil {
		return nil, nil
	}
	defer unk.Release()
	disp, err := unk.QueryInterface(iid)
	if err != nil {
		return nil, err
	}
	return (*ole.IUnknown)(unsafe.Pointer(disp)), nil
}

// iUIAutomationElementArray wraps a FindAll result set.
type iUIAutomationElementArray struct{ ole.IUnknown }

type iUIAutomationElementArrayVtbl struct {
	ole.IUnknownVtbl
	GetLength  uintptr
	GetElement uintptr
}

func (v *iUIAutomationElementArray) vtbl() *iUIAutomationElementArrayVtbl {
	return (*iUIAutomationElementArrayVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *iUIAutomationElementArray) length() (int, error) {
	var n int32
	err := call(v.vtbl().GetLength,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&n)))
	return int(n), err
}

func (v *iUIAutomationElementArray) element(i int) (*iUIAutomationElement, error) {
	var elem *iUIAutomationElement
	err := call(v.vtbl().GetElement,
		uintptr(unsafe.Pointer(v)),
		uintptr(int32(i)),
		uintptr(unsafe.Pointer(&elem)))
	return elem, err
}

// Pattern interfaces. Only the leading vtable entries each operation needs
// are declared; the full interfaces carry additional property getters we
// read through GetCurrentPropertyValue instead.

type patternMethod0Vtbl struct {
	ole.IUnknownVtbl
	Method0 uintptr
}

// callPattern0 invokes the first method of a pattern interface with no
// arguments beyond the receiver (Invoke, Toggle, Select, Expand, Close,
// ScrollIntoView all have this shape).
func callPattern0(p *ole.IUnknown, extraArgs ...uintptr) error {
	vt := (*patternMethod0Vtbl)(unsafe.Pointer(p.RawVTable))
	args := append([]uintptr{uintptr(unsafe.Pointer(p))}, extraArgs...)
	return call(vt.Method0, args...)
}

type patternMethod1Vtbl struct {
	ole.IUnknownVtbl
	Method0 uintptr
	Method1 uintptr
}

// callPattern1 invokes the second method of a pattern interface
// (Collapse on ExpandCollapse).
func callPattern1(p *ole.IUnknown, extraArgs ...uintptr) error {
	vt := (*patternMethod1Vtbl)(unsafe.Pointer(p.RawVTable))
	args := append([]uintptr{uintptr(unsafe.Pointer(p))}, extraArgs...)
	return call(vt.Method1, args...)
}

type patternMethod2Vtbl struct {
	ole.IUnknownVtbl
	Method0 uintptr
	Method1 uintptr
	Method2 uintptr
}

// callPattern2 invokes the third method of a pattern interface
// (SetWindowVisualState on Window).
func callPattern2(p *ole.IUnknown, extraArgs ...uintptr) error {
	vt := (*patternMethod2Vtbl)(unsafe.Pointer(p.RawVTable))
	args := append([]uintptr{uintptr(unsafe.Pointer(p))}, extraArgs...)
	return call(vt.Method2, args...)
}

// Text pattern: get_DocumentRange is the fifth method.
type textPatternVtbl struct {
	ole.IUnknownVtbl
	RangeFromPoint   uintptr
	RangeFromChild   uintptr
	GetSelection     uintptr
	GetVisibleRanges uintptr
	GetDocumentRange uintptr
}

// Text range: GetText is the tenth method.
type textRangeVtbl struct {
	ole.IUnknownVtbl
	Clone                uintptr
	Compare              uintptr
	CompareEndpoints     uintptr
	ExpandToEnclosingUnit uintptr
	FindAttribute        uintptr
	FindText             uintptr
	GetAttributeValue    uintptr
	GetBoundingRectangles uintptr
	GetEnclosingElement  uintptr
	GetText              uintptr
}

func documentText(textPattern *ole.IUnknown) (string, error) {
	vt := (*textPatternVtbl)(unsafe.Pointer(textPattern.RawVTable))
	var docRange *ole.IUnknown
	if err := call(vt.GetDocumentRange,
		uintptr(unsafe.Pointer(textPattern)),
		uintptr(unsafe.Pointer(&docRange))); err != nil {
		return "", err
	}
	defer docRange.Release()

	rvt := (*textRangeVtbl)(unsafe.Pointer(docRange.RawVTable))
	var bstr *uint16
	if err := call(rvt.GetText,
		uintptr(unsafe.Pointer(docRange)),
		uintptr(^uint32(0)), // -1: no length limit
		uintptr(unsafe.Pointer(&bstr))); err != nil {
		return "", err
	}
	defer ole.SysFreeString((*int16)(unsafe.Pointer(bstr)))
	return ole.BstrToString(bstr), nil
}
