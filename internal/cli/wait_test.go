package cli

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/rheard/netauto/internal/native/nativetest"
)

func TestWaitCommand_HasExpectedFlags(t *testing.T) {
	for _, name := range []string{"gone", "keep-offscreen", "timeout", "scope"} {
		if waitCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to exist on wait command", name)
		}
	}
	if waitCmd.Flags().Lookup("timeout").DefValue != "30" {
		t.Errorf("wait timeout default = %s, want 30", waitCmd.Flags().Lookup("timeout").DefValue)
	}
}

func TestWaitCommand_AlreadyPresent(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(
		nativetest.NewNode(map[string]any{"name": "Ready"}),
	))
	withBackend(t, backend)

	got, err := execute(t, "wait", "name=Ready", "--timeout", "0")
	if err != nil {
		t.Fatalf("wait failed: %v\noutput:\n%s", err, got)
	}

	var result waitResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if !result.OK || result.TimedOut {
		t.Errorf("result = %+v", result)
	}
	if result.Element == nil || result.Element.Name != "Ready" {
		t.Errorf("element = %+v", result.Element)
	}
}

func TestWaitCommand_AppearTimesOut(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}))
	withBackend(t, backend)

	got, err := execute(t, "wait", "name=Never", "--timeout", "0")
	if err == nil {
		t.Fatalf("expected a timeout error, output:\n%s", got)
	}

	var result waitResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if result.OK || !result.TimedOut {
		t.Errorf("result = %+v", result)
	}
}

func TestWaitCommand_GoneAlreadyAbsent(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}))
	withBackend(t, backend)

	got, err := execute(t, "wait", "name=Dialog", "--gone", "--timeout", "0")
	if err != nil {
		t.Fatalf("wait --gone failed: %v\noutput:\n%s", err, got)
	}

	var result waitResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if !result.OK || !result.Gone {
		t.Errorf("result = %+v", result)
	}
}

func TestWaitCommand_GoneOffscreenElement(t *testing.T) {
	backend := nativetest.NewBackend(nativetest.NewNode(map[string]any{"name": "Desktop"}).Add(
		nativetest.NewNode(map[string]any{"name": "Splash", "is_offscreen": true}),
	))
	withBackend(t, backend)

	got, err := execute(t, "wait", "name=Splash", "--gone", "--timeout", "1")
	if err != nil {
		t.Fatalf("wait --gone failed: %v\noutput:\n%s", err, got)
	}

	var result waitResult
	if err := yaml.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if !result.OK || !result.Gone {
		t.Errorf("offscreen element should count as gone: %+v", result)
	}
}
