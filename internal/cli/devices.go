package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/toolchain"
)

var deviceSerial string

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List connected devices",
		Args:  cobra.NoArgs,
		RunE:  runDevices,
	}
}

func runDevices(cmd *cobra.Command, _ []string) error {
	adb := toolchain.NewADB(toolchain.CmdRunner{})
	devices, err := adb.Devices(cmd.Context())
	if err != nil {
		return err
	}

	if outputJSON {
		data, err := json.MarshalIndent(devices, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(devices) == 0 {
		pterm.Warning.Println("No connected devices found.")
		return nil
	}
	cmd.Println(headerStyle.Render("Connected Devices:"))
	for i, serial := range devices {
		cmd.Printf("  %d. %s\n", i+1, serial)
	}
	return nil
}

// pickDevice resolves the target device: the --device flag when given, else
// the first connected device. Multiple devices without a flag fall back to
// the first with a warning.
func pickDevice(ctx context.Context, adb *toolchain.ADB) (string, error) {
	devices, err := adb.Devices(ctx)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", toolchain.ErrNoDevices
	}

	if deviceSerial != "" {
		for _, serial := range devices {
			if serial == deviceSerial {
				return serial, nil
			}
		}
		return "", fmt.Errorf("device %s not connected", deviceSerial)
	}

	if len(devices) > 1 {
		pterm.Warning.Printfln("Multiple devices found; using %s (use --device to pick another).", devices[0])
	}
	return devices[0], nil
}
