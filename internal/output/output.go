// Package output prints command results as YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's
// --format flag.
var OutputFormat = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Writer receives all output. Tests point it at a buffer.
var Writer io.Writer = os.Stdout

// ElementInfo is the compact element representation in find results.
type ElementInfo struct {
	RuntimeID    string `yaml:"runtime_id,omitempty"   json:"runtime_id,omitempty"`
	Name         string `yaml:"name,omitempty"         json:"name,omitempty"`
	ClassName    string `yaml:"class_name,omitempty"   json:"class_name,omitempty"`
	AutomationID string `yaml:"automation_id,omitempty" json:"automation_id,omitempty"`
	ProcessID    int    `yaml:"process_id,omitempty"   json:"process_id,omitempty"`
	Offscreen    bool   `yaml:"offscreen,omitempty"    json:"offscreen,omitempty"`
	Value        string `yaml:"value,omitempty"        json:"value,omitempty"`
}

// Print serializes v in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(v, PrettyOutput)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v as JSON, single-line unless pretty.
func PrintJSON(v interface{}, pretty bool) error {
	enc := json.NewEncoder(Writer)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Writer)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
