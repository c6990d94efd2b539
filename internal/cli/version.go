package cli

import (
	"github.com/spf13/cobra"
)

// Version is the release version, overridable at build time with
// -ldflags "-X github.com/apfsource/ktroid/internal/cli.Version=...".
var Version = "1.0.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ktroid version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("ktroid version %s\n", Version)
		},
	}
}
