package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rheard/netauto/internal/output"
)

var setValueCmd = &cobra.Command{
	Use:   "set-value key=value ...",
	Short: "Write a value into an element",
	Long: `Find the first element matching the given properties and write a value
through its Value pattern (--value) or RangeValue pattern (--range).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSetValue,
}

func init() {
	rootCmd.AddCommand(setValueCmd)
	addSearchFlags(setValueCmd)
	setValueCmd.Flags().String("value", "", "String value for the Value pattern")
	setValueCmd.Flags().Float64("range", 0, "Numeric value for the RangeValue pattern")
}

func runSetValue(cmd *cobra.Command, args []string) error {
	valueSet := cmd.Flags().Changed("value")
	rangeSet := cmd.Flags().Changed("range")
	if valueSet == rangeSet {
		return fmt.Errorf("specify exactly one of --value or --range")
	}

	el, err := findTarget(cmd, args)
	if err != nil {
		return err
	}

	if rangeSet {
		v, _ := cmd.Flags().GetFloat64("range")
		if err := el.SetRangeValue(v); err != nil {
			return err
		}
	} else {
		v, _ := cmd.Flags().GetString("value")
		if err := el.SetValue(v); err != nil {
			return err
		}
	}
	return output.Print(actionResult{OK: true, Action: "set-value", Element: elementInfo(el)})
}
