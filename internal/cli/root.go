package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	projectDir string
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ktroid",
		Short: "CLI tool for native Android development (Kotlin + Gradle)",
	}

	cmd.PersistentFlags().StringVar(&projectDir, "project", "", "Path to project directory")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newTestCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDepCmd())
	cmd.AddCommand(newPermCmd())
	cmd.AddCommand(newBumpCmd())
	cmd.AddCommand(newSigningCmd())
	cmd.AddCommand(newDevicesCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newUninstallCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
