package output

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sampleResult struct {
	OK       bool          `yaml:"ok"      json:"ok"`
	Action   string        `yaml:"action"  json:"action"`
	Elements []ElementInfo `yaml:"elements" json:"elements"`
}

func captureOutput(t *testing.T, fn func() error) string {
	t.Helper()
	var buf bytes.Buffer
	old := Writer
	Writer = &buf
	defer func() { Writer = old }()
	if err := fn(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := sampleResult{
		OK:     true,
		Action: "find",
		Elements: []ElementInfo{
			{Name: "Calculator", ClassName: "ApplicationFrameWindow", ProcessID: 1234},
		},
	}

	got := captureOutput(t, func() error { return PrintYAML(result) })

	if strings.Count(got, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", got)
	}
	var decoded sampleResult
	if err := yaml.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !decoded.OK || decoded.Action != "find" || len(decoded.Elements) != 1 {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
	if decoded.Elements[0].Name != "Calculator" {
		t.Errorf("element name = %q", decoded.Elements[0].Name)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	result := sampleResult{OK: true, Action: "invoke"}

	got := captureOutput(t, func() error { return PrintJSON(result, false) })

	if strings.Count(strings.TrimRight(got, "\n"), "\n") != 0 {
		t.Errorf("compact JSON should be single-line, got:\n%s", got)
	}
	if !strings.Contains(got, `"action":"invoke"`) {
		t.Errorf("unexpected JSON: %s", got)
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	result := sampleResult{OK: true, Action: "invoke"}

	got := captureOutput(t, func() error { return PrintJSON(result, true) })

	if strings.Count(got, "\n") <= 1 {
		t.Errorf("pretty JSON should be indented, got:\n%s", got)
	}
}

func TestPrint_RespectsFormat(t *testing.T) {
	result := sampleResult{OK: true, Action: "wait"}

	old := OutputFormat
	defer func() { OutputFormat = old }()

	OutputFormat = FormatJSON
	got := captureOutput(t, func() error { return Print(result) })
	if !strings.HasPrefix(got, "{") {
		t.Errorf("FormatJSON produced:\n%s", got)
	}

	OutputFormat = FormatYAML
	got = captureOutput(t, func() error { return Print(result) })
	if strings.HasPrefix(got, "{") {
		t.Errorf("FormatYAML produced:\n%s", got)
	}

	OutputFormat = Format("csv")
	if err := Print(result); err == nil {
		t.Error("unknown format did not error")
	}
	OutputFormat = old
}
