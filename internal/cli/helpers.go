package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rheard/netauto"
	"github.com/rheard/netauto/internal/native"
	"github.com/rheard/netauto/internal/output"
)

// parseProps converts key=value arguments into search props. Values parse
// as bool, then int, then float, falling back to string.
func parseProps(args []string) (netauto.Props, error) {
	props := netauto.Props{}
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("property %q is not key=value", arg)
		}
		props[key] = parseValue(raw)
	}
	return props, nil
}

func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// addSearchFlags registers the polling flags shared by every command that
// locates an element.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("scope", "descendants", "Search scope: element, children, descendants, subtree")
	cmd.Flags().Float64("timeout", 0, "Max seconds to keep retrying an empty search")
	cmd.Flags().Int("min-searches", 1, "Minimum number of native searches before giving up")
	cmd.Flags().Int("interval", 100, "Polling interval in milliseconds")
	cmd.Flags().Bool("focused", false, "Search below the focused element instead of the desktop root")
}

// intFlag reads a flag, falling back to the config file when the flag was
// not set on the command line.
func intFlag(cmd *cobra.Command, name string) int {
	if f := cmd.Flags().Lookup(name); f != nil && !f.Changed && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func float64Flag(cmd *cobra.Command, name string) float64 {
	if f := cmd.Flags().Lookup(name); f != nil && !f.Changed && viper.IsSet(name) {
		return viper.GetFloat64(name)
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return v
}

// searchOptions builds FindOptions from the flags added by addSearchFlags.
func searchOptions(cmd *cobra.Command) (netauto.FindOptions, error) {
	scopeStr, _ := cmd.Flags().GetString("scope")
	scope, err := native.ParseScope(scopeStr)
	if err != nil {
		return netauto.FindOptions{}, err
	}
	return netauto.FindOptions{
		Scope:       scope,
		Timeout:     time.Duration(float64Flag(cmd, "timeout") * float64(time.Second)),
		MinSearches: intFlag(cmd, "min-searches"),
		Interval:    time.Duration(intFlag(cmd, "interval")) * time.Millisecond,
	}, nil
}

// searchRoot returns the element searches start from.
func searchRoot(cmd *cobra.Command) (*netauto.Element, error) {
	if focused, _ := cmd.Flags().GetBool("focused"); focused {
		return netauto.Focused()
	}
	return netauto.Desktop()
}

// findTarget parses the positional props, locates the first matching
// element, and returns it.
func findTarget(cmd *cobra.Command, args []string) (*netauto.Element, error) {
	props, err := parseProps(args)
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return nil, fmt.Errorf("specify at least one key=value property")
	}
	opts, err := searchOptions(cmd)
	if err != nil {
		return nil, err
	}
	root, err := searchRoot(cmd)
	if err != nil {
		return nil, err
	}
	return root.FindElement(props, opts)
}

// elementInfo reads the identifying properties of an element for output.
// Individual property failures leave the field empty rather than failing
// the whole command.
func elementInfo(el *netauto.Element) output.ElementInfo {
	info := output.ElementInfo{RuntimeID: el.RuntimeID()}
	info.Name, _ = el.Name()
	info.ClassName, _ = el.ClassName()
	info.AutomationID, _ = el.AutomationID()
	info.ProcessID, _ = el.ProcessID()
	info.Offscreen, _ = el.IsOffscreen()
	info.Value, _ = el.Value()
	return info
}

// actionResult is the YAML output of pattern commands (invoke, toggle, ...).
type actionResult struct {
	OK      bool               `yaml:"ok"              json:"ok"`
	Action  string             `yaml:"action"          json:"action"`
	State   string             `yaml:"state,omitempty" json:"state,omitempty"`
	Element output.ElementInfo `yaml:"element"         json:"element"`
}
