package cli

import (
	"github.com/spf13/cobra"

	"github.com/rheard/netauto/internal/output"
)

var selectCmd = &cobra.Command{
	Use:   "select key=value ...",
	Short: "Select an element (pick a list item or radio button)",
	Long:  "Find the first element matching the given properties and select it via the SelectionItem pattern.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	addSearchFlags(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	el, err := findTarget(cmd, args)
	if err != nil {
		return err
	}
	if err := el.Select(); err != nil {
		return err
	}
	return output.Print(actionResult{OK: true, Action: "select", Element: elementInfo(el)})
}
