package cli

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/config"
	"github.com/apfsource/ktroid/internal/paths"
)

var configInit bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the build-parameter configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}

	cmd.Flags().BoolVar(&configInit, "init", false, "Reset/create the default config file")

	return cmd
}

func runConfig(cmd *cobra.Command, _ []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	exists, err := paths.FileExists(path)
	if err != nil {
		return err
	}

	if exists && !configInit {
		pterm.Info.Printfln("Configuration file exists at: %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		pterm.Info.Println("Edit this file to update SDK/AGP versions without updating the tool.")
		return nil
	}

	if exists {
		pterm.Warning.Println("Overwriting existing configuration...")
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	pterm.Success.Printfln("Configuration file created at: %s", path)
	return nil
}
