// Package cli implements the netauto command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rheard/netauto"
	"github.com/rheard/netauto/internal/output"
	"github.com/rheard/netauto/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "netauto",
	Short: "Inspect and drive UI Automation elements",
	Long: `A CLI over the Windows UI Automation API. Find elements by property
conditions, read their properties, and fire control patterns (invoke,
set-value, toggle, expand, select) against them.

Properties are given as snake_case key=value arguments, e.g.:

  netauto find name=Calculator class_name=ApplicationFrameWindow
  netauto invoke automation_id=num5Button --timeout 5
  netauto wait name=Saving... --gone`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging of search polling")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loadConfig()

		// Use the root persistent flag directly so subcommand local flags
		// cannot shadow it.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = viper.GetString("format")
		}
		switch format {
		case "", "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty

		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		if verbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			netauto.SetLogger(logger)
		}
		return nil
	}
}

// loadConfig reads optional defaults from ~/.netauto.yaml. A missing file
// is not an error; flags always win over the file.
func loadConfig() {
	viper.SetConfigName(".netauto")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("netauto")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
