package cli

import (
	"github.com/spf13/cobra"

	"github.com/rheard/netauto/internal/output"
	"github.com/rheard/netauto/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(struct {
			Version   string `yaml:"version"    json:"version"`
			Commit    string `yaml:"commit"     json:"commit"`
			BuildDate string `yaml:"build_date" json:"build_date"`
		}{version.Version, version.Commit, version.BuildDate})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
