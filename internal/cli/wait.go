package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rheard/netauto"
	"github.com/rheard/netauto/internal/output"
)

var waitCmd = &cobra.Command{
	Use:   "wait key=value ...",
	Short: "Wait for an element to appear or disappear",
	Long: `Poll until an element matching the given properties appears, or with
--gone until it disappears. An element that is offscreen counts as gone
unless --keep-offscreen is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	addSearchFlags(waitCmd)
	waitCmd.Flags().Bool("gone", false, "Invert: wait until no element matches")
	waitCmd.Flags().Bool("keep-offscreen", false, "Treat offscreen elements as still present")
	// The shared default of 0 makes no sense for a wait.
	_ = waitCmd.Flags().Lookup("timeout").Value.Set("30")
	waitCmd.Flags().Lookup("timeout").DefValue = "30"
}

// waitResult is the YAML output of the wait command.
type waitResult struct {
	OK       bool                `yaml:"ok"                 json:"ok"`
	Action   string              `yaml:"action"             json:"action"`
	Gone     bool                `yaml:"gone,omitempty"     json:"gone,omitempty"`
	Elapsed  string              `yaml:"elapsed"            json:"elapsed"`
	TimedOut bool                `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
	Element  *output.ElementInfo `yaml:"element,omitempty"  json:"element,omitempty"`
}

func runWait(cmd *cobra.Command, args []string) error {
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

	gone, _ := cmd.Flags().GetBool("gone")
	keepOffscreen, _ := cmd.Flags().GetBool("keep-offscreen")
	start := time.Now()

	if gone {
		return waitGone(root, props, opts, keepOffscreen, start)
	}

	el, err := root.FindElement(props, opts)
	var notFound *netauto.ElementNotFoundError
	if errors.As(err, &notFound) {
		_ = output.Print(waitResult{
			Action:   "wait",
			Elapsed:  elapsed(start),
			TimedOut: true,
		})
		return fmt.Errorf("timed out waiting for element: %v", notFound)
	}
	if err != nil {
		return err
	}
	info := elementInfo(el)
	return output.Print(waitResult{
		OK:      true,
		Action:  "wait",
		Elapsed: elapsed(start),
		Element: &info,
	})
}

// waitGone locates the element and polls until it disappears. An element
// that was never there counts as already gone.
func waitGone(root *netauto.Element, props netauto.Props, opts netauto.FindOptions, keepOffscreen bool, start time.Time) error {
	// Locate without a grace period; absence is success here.
	locate := opts
	locate.Timeout = 0
	locate.MinSearches = 1

	el, err := root.FindElement(props, locate)
	var notFound *netauto.ElementNotFoundError
	if errors.As(err, &notFound) {
		return output.Print(waitResult{
			OK:      true,
			Action:  "wait",
			Gone:    true,
			Elapsed: elapsed(start),
		})
	}
	if err != nil {
		return err
	}

	if el.WaitUnavailable(netauto.WaitOptions{
		Timeout:       opts.Timeout,
		KeepOffscreen: keepOffscreen,
		Interval:      opts.Interval,
	}) {
		return output.Print(waitResult{
			OK:      true,
			Action:  "wait",
			Gone:    true,
			Elapsed: elapsed(start),
		})
	}

	_ = output.Print(waitResult{
		Action:   "wait",
		Gone:     true,
		Elapsed:  elapsed(start),
		TimedOut: true,
	})
	return fmt.Errorf("timed out waiting for element to disappear")
}

func elapsed(start time.Time) string {
	return fmt.Sprintf("%.1fs", time.Since(start).Seconds())
}
