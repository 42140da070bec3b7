package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rheard/netauto/internal/output"
)

var findCmd = &cobra.Command{
	Use:   "find key=value ...",
	Short: "Search the automation tree for matching elements",
	Long: `Search below the desktop root for elements matching every key=value
property. Keys are snake_case UI Automation property names; names present
in more than one pattern must be scoped, e.g. range_value__value=50.

The search polls until it yields results or both --timeout and
--min-searches are exhausted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	addSearchFlags(findCmd)
	findCmd.Flags().Bool("all", false, "Return every match instead of the first")
}

// findResult is the top-level output of the find command.
type findResult struct {
	OK       bool                 `yaml:"ok"       json:"ok"`
	Action   string               `yaml:"action"   json:"action"`
	Total    int                  `yaml:"total"    json:"total"`
	Elements []output.ElementInfo `yaml:"elements" json:"elements"`
}

func runFind(cmd *cobra.Command, args []string) error {
	props, err := parseProps(args)
	if err != nil {
		return err
	}
	opts, err := searchOptions(cmd)
	if err != nil {
		return err
	}
	root, err := searchRoot(cmd)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	result := findResult{OK: true, Action: "find"}

	if all {
		elements, err := root.FindElements(props, opts)
		if err != nil {
			return err
		}
		for _, el := range elements {
			result.Elements = append(result.Elements, elementInfo(el))
		}
	} else {
		el, err := root.FindElement(props, opts)
		if err != nil {
			return err
		}
		result.Elements = append(result.Elements, elementInfo(el))
	}

	result.Total = len(result.Elements)
	if result.Total == 0 {
		result.OK = false
		if err := output.Print(result); err != nil {
			return err
		}
		return fmt.Errorf("no elements matched")
	}
	return output.Print(result)
}
