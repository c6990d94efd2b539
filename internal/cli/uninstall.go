package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/gradle"
	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/toolchain"
)

func newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall [package]",
		Short: "Uninstall an app from a connected device",
		Long:  "Uninstall an app from a connected device. Defaults to the application ID of the current project.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUninstall,
	}
	cmd.Flags().StringVar(&deviceSerial, "device", "", "target device serial")
	return cmd
}

func runUninstall(cmd *cobra.Command, args []string) error {
	var appID string
	if len(args) == 1 {
		appID = trimmed(args[0])
	} else {
		pp, err := paths.Resolve(projectDir)
		if err != nil {
			return err
		}
		appID, err = gradle.NewEngine(pp).ApplicationID()
		if err != nil {
			return fmt.Errorf("determine application id: %w", err)
		}
		if appID == gradle.Unknown {
			return fmt.Errorf("could not determine application id; pass the package name explicitly")
		}
	}

	adb := toolchain.NewADB(toolchain.CmdRunner{})
	serial, err := pickDevice(cmd.Context(), adb)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("Uninstalling %s from %s...", appID, serial)
	if err := adb.Uninstall(cmd.Context(), serial, appID); err != nil {
		return err
	}
	pterm.Success.Println("App uninstalled.")
	return nil
}
