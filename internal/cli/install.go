package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/toolchain"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <apk>",
		Short: "Install an APK on a connected device",
		Args:  cobra.ExactArgs(1),
		RunE:  runInstall,
	}
	cmd.Flags().StringVar(&deviceSerial, "device", "", "target device serial")
	return cmd
}

func runInstall(cmd *cobra.Command, args []string) error {
	apk := args[0]
	if _, err := os.Stat(apk); err != nil {
		return fmt.Errorf("apk not found: %s", apk)
	}

	adb := toolchain.NewADB(toolchain.CmdRunner{})
	serial, err := pickDevice(cmd.Context(), adb)
	if err != nil {
		if errors.Is(err, toolchain.ErrNoDevices) {
			pterm.Error.Println("No connected devices found.")
			return err
		}
		return err
	}

	pterm.Info.Printfln("Installing %s on %s...", apk, serial)
	if err := adb.Install(cmd.Context(), serial, apk); err != nil {
		return err
	}
	pterm.Success.Println("APK installed.")
	return nil
}
