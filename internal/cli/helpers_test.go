package cli

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rheard/netauto"
	"github.com/rheard/netauto/internal/native"
	"github.com/rheard/netauto/internal/native/nativetest"
	"github.com/rheard/netauto/internal/output"
)

// withBackend routes Desktop()/Focused() at a fake tree for the duration
// of a test.
func withBackend(t *testing.T, b *nativetest.Backend) {
	t.Helper()
	old := native.NewBackendFunc
	native.NewBackendFunc = func() (native.Backend, error) { return b, nil }
	t.Cleanup(func() { native.NewBackendFunc = old })
}

// resetFlags restores every flag to its default so executions do not leak
// state into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	oldWriter := output.Writer
	output.Writer = &buf
	defer func() { output.Writer = oldWriter }()

	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestParseProps(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want netauto.Props
	}{
		{"string", []string{"name=Calculator"}, netauto.Props{"name": "Calculator"}},
		{"bool", []string{"is_window=true"}, netauto.Props{"is_window": true}},
		{"int", []string{"process_id=42"}, netauto.Props{"process_id": 42}},
		{"float", []string{"range_value__value=1.5"}, netauto.Props{"range_value__value": 1.5}},
		{"empty value", []string{"name="}, netauto.Props{"name": ""}},
		{"multiple", []string{"name=OK", "is_enabled=false"}, netauto.Props{"name": "OK", "is_enabled": false}},
		{"equals in value", []string{"name=a=b"}, netauto.Props{"name": "a=b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProps(tt.args)
			if err != nil {
				t.Fatalf("parseProps(%v): %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseProps(%v) = %#v, want %#v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseProps_Invalid(t *testing.T) {
	for _, arg := range []string{"noequals", "=value"} {
		if _, err := parseProps([]string{arg}); err == nil {
			t.Errorf("parseProps(%q) did not error", arg)
		}
	}
}

func TestElementInfo(t *testing.T) {
	node := nativetest.NewNode(map[string]any{
		"name":          "Save",
		"class_name":    "Button",
		"automation_id": "saveButton",
		"process_id":    1234,
		"value__value":  "draft",
	})
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(node))
	withBackend(t, backend)

	root, err := netauto.Desktop()
	if err != nil {
		t.Fatal(err)
	}
	el, err := root.FindElement(netauto.Props{"name": "Save"}, netauto.FindOptions{})
	if err != nil {
		t.Fatal(err)
	}

	info := elementInfo(el)
	if info.Name != "Save" || info.ClassName != "Button" || info.AutomationID != "saveButton" {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.ProcessID != 1234 {
		t.Errorf("process id = %d, want 1234", info.ProcessID)
	}
	if info.Value != "draft" {
		t.Errorf("value = %q, want draft", info.Value)
	}
}
