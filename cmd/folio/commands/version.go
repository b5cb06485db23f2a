package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of folio.`,
	Args:  cobra.NoArgs,
	// The version command needs no config.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintf(w, "folio version %s\n", cmd.Version)
		fmt.Fprintf(w, "  commit: %s\n", cmd.Commit)
		fmt.Fprintf(w, "  built:  %s\n", cmd.Date)
		fmt.Fprintf(w, "  go:     %s\n", runtime.Version())
	},
}
