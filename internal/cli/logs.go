package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/gradle"
	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/toolchain"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Stream logcat output for the app",
		Long:  "Stream logcat output filtered to the current project's app. Press Ctrl+C to stop.",
		Args:  cobra.NoArgs,
		RunE:  runLogs,
	}
	cmd.Flags().StringVar(&deviceSerial, "device", "", "target device serial")
	return cmd
}

func runLogs(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}
	appID, err := gradle.NewEngine(pp).ApplicationID()
	if err != nil || appID == gradle.Unknown {
		return fmt.Errorf("could not determine application id from %s", pp.BuildFile)
	}

	adb := toolchain.NewADB(toolchain.CmdRunner{})
	serial, err := pickDevice(cmd.Context(), adb)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	pid, err := adb.Pidof(ctx, serial, appID)
	if err != nil {
		return err
	}
	if pid == "" {
		pterm.Warning.Printfln("%s is not running; filtering by package name instead.", appID)
	}

	pterm.Info.Printfln("Streaming logs for %s (Ctrl+C to stop)...", appID)
	if err := adb.Logcat(ctx, serial, pid, appID, os.Stdout); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
