package cli

import (
	"github.com/spf13/cobra"

	"github.com/rheard/netauto/internal/output"
)

var expandCmd = &cobra.Command{
	Use:   "expand key=value ...",
	Short: "Expand an element (open a menu or tree item)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExpand,
}

var collapseCmd = &cobra.Command{
	Use:   "collapse key=value ...",
	Short: "Collapse an element",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCollapse,
}

func init() {
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(collapseCmd)
	addSearchFlags(expandCmd)
	addSearchFlags(collapseCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	el, err := findTarget(cmd, args)
	if err != nil {
		return err
	}
	if err := el.Expand(); err != nil {
		return err
	}
	return output.Print(actionResult{OK: true, Action: "expand", Element: elementInfo(el)})
}

func runCollapse(cmd *cobra.Command, args []string) error {
	el, err := findTarget(cmd, args)
	if err != nil {
		return err
	}
	if err := el.Collapse(); err != nil {
		return err
	}
	return output.Print(actionResult{OK: true, Action: "collapse", Element: elementInfo(el)})
}
