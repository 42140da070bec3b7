package cli

import (
	"github.com/spf13/cobra"

	"github.com/rheard/netauto"
	"github.com/rheard/netauto/internal/output"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle key=value ...",
	Short: "Toggle an element (flip a checkbox)",
	Long:  "Find the first element matching the given properties and cycle its Toggle pattern.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	addSearchFlags(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	el, err := findTarget(cmd, args)
	if err != nil {
		return err
	}
	if err := el.Toggle(); err != nil {
		return err
	}
	result := actionResult{OK: true, Action: "toggle", Element: elementInfo(el)}
	if state, err := el.ToggleState(); err == nil {
		result.State = toggleStateName(state)
	}
	return output.Print(result)
}

func toggleStateName(s netauto.ToggleState) string {
	switch s {
	case netauto.ToggleOff:
		return "off"
	case netauto.ToggleOn:
		return "on"
	case netauto.ToggleIndeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}
