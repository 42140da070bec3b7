package cli

import (
	"github.com/spf13/cobra"

	"github.com/rheard/netauto/internal/output"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke key=value ...",
	Short: "Invoke an element (press a button)",
	Long:  "Find the first element matching the given properties and fire its Invoke pattern.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInvoke,
}

func init() {
	rootCmd.AddCommand(invokeCmd)
	addSearchFlags(invokeCmd)
}

func runInvoke(cmd *cobra.Command, args []string) error {
	el, err := findTarget(cmd, args)
	if err != nil {
		return err
	}
	if err := el.Invoke(); err != nil {
		return err
	}
	return output.Print(actionResult{OK: true, Action: "invoke", Element: elementInfo(el)})
}
