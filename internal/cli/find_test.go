package cli

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/rheard/netauto/internal/native/nativetest"
	"github.com/rheard/netauto/internal/output"
)

func TestFindCommand_HasExpectedFlags(t *testing.T) {
	expectedFlags := []string{"scope", "timeout", "min-searches", "interval", "focused", "all"}
	for _, name := range expectedFlags {
		if findCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to exist on find command", name)
		}
	}
}

func TestFindCommand_SingleMatch(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(
		nativetest.NewNode(map[string]any{"name": "OK", "class_name": "Button"}),
		nativetest.NewNode(map[string]any{"name": "Cancel", "class_name": "Button"}),
	))
	withBackend(t, backend)

	got, err := execute(t, "find", "name=OK", "--timeout", "0")
	if err != nil {
		t.Fatalf("find failed: %v\noutput:\n%s", err, got)
	}

	var result findResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if !result.OK || result.Total != 1 {
		t.Errorf("result = %+v", result)
	}
	if result.Elements[0].Name != "OK" || result.Elements[0].ClassName != "Button" {
		t.Errorf("element = %+v", result.Elements[0])
	}
}

func TestFindCommand_All(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(
		nativetest.NewNode(map[string]any{"name": "OK", "class_name": "Button"}),
		nativetest.NewNode(map[string]any{"name": "Cancel", "class_name": "Button"}),
	))
	withBackend(t, backend)

	got, err := execute(t, "find", "class_name=Button", "--all", "--timeout", "0")
	if err != nil {
		t.Fatalf("find --all failed: %v\noutput:\n%s", err, got)
	}

	var result findResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
}

func TestFindCommand_NoMatch(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}))
	withBackend(t, backend)

	_, err := execute(t, "find", "name=Missing", "--timeout", "0")
	if err == nil {
		t.Fatal("expected an error when nothing matches")
	}
	if !strings.Contains(err.Error(), "no element") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFindCommand_AmbiguousKey(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}))
	withBackend(t, backend)

	_, err := execute(t, "find", "value=50", "--timeout", "0")
	if err == nil {
		t.Fatal("expected an error for the ambiguous key")
	}
	if !strings.Contains(err.Error(), "value") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFindCommand_JSONFormat(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(
		nativetest.NewNode(map[string]any{"name": "OK"}),
	))
	withBackend(t, backend)

	oldFormat := output.OutputFormat
	defer func() { output.OutputFormat = oldFormat }()

	got, err := execute(t, "find", "name=OK", "--timeout", "0", "--format", "json")
	if err != nil {
		t.Fatalf("find failed: %v\noutput:\n%s", err, got)
	}
	if !strings.HasPrefix(got, "{") {
		t.Errorf("expected JSON output, got:\n%s", got)
	}
}
