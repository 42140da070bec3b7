package cli

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/rheard/netauto"
	"github.com/rheard/netauto/internal/native/nativetest"
)

func TestInvokeCommand_PressesButton(t *testing.T) {
	button := nativetest.NewNode(map[string]any{"name": "OK", "class_name": "Button"})
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(button))
	withBackend(t, backend)

	got, err := execute(t, "invoke", "name=OK", "--timeout", "0")
	if err != nil {
		t.Fatalf("invoke failed: %v\noutput:\n%s", err, got)
	}
	if button.InvokeCount != 1 {
		t.Errorf("invoke count = %d, want 1", button.InvokeCount)
	}

	var result actionResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if !result.OK || result.Action != "invoke" {
		t.Errorf("result = %+v", result)
	}
}

func TestSetValueCommand_WritesValue(t *testing.T) {
	field := nativetest.NewNode(map[string]any{"automation_id": "nameField", "value__value": ""})
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(field))
	withBackend(t, backend)

	got, err := execute(t, "set-value", "automation_id=nameField", "--value", "hello", "--timeout", "0")
	if err != nil {
		t.Fatalf("set-value failed: %v\noutput:\n%s", err, got)
	}
	if field.LastValue != "hello" {
		t.Errorf("last value = %q, want hello", field.LastValue)
	}
}

func TestSetValueCommand_WritesRange(t *testing.T) {
	slider := nativetest.NewNode(map[string]any{"automation_id": "volume", "range_value__value": 0.0})
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(slider))
	withBackend(t, backend)

	_, err := execute(t, "set-value", "automation_id=volume", "--range", "75", "--timeout", "0")
	if err != nil {
		t.Fatalf("set-value --range failed: %v", err)
	}

	root, err := netauto.Desktop()
	if err != nil {
		t.Fatal(err)
	}
	el, err := root.FindElement(netauto.Props{"automation_id": "volume"}, netauto.FindOptions{})
	if err != nil {
		t.Fatal(err)
	}
	v, err := el.RangeValue()
	if err != nil {
		t.Fatal(err)
	}
	if v != 75 {
		t.Errorf("range value = %v, want 75", v)
	}
}

func TestSetValueCommand_RequiresExactlyOneValue(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}))
	withBackend(t, backend)

	_, err := execute(t, "set-value", "name=x", "--timeout", "0")
	if err == nil || !strings.Contains(err.Error(), "exactly one") {
		t.Errorf("expected the flag validation error, got: %v", err)
	}
}

func TestToggleCommand_ReportsState(t *testing.T) {
	box := nativetest.NewNode(map[string]any{"name": "Remember me", "toggle_state": 0})
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(box))
	withBackend(t, backend)

	got, err := execute(t, "toggle", "name=Remember me", "--timeout", "0")
	if err != nil {
		t.Fatalf("toggle failed: %v\noutput:\n%s", err, got)
	}

	var result actionResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if result.State != "on" {
		t.Errorf("state = %q, want on", result.State)
	}
}
