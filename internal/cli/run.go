package cli

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/gradle"
	"github.com/apfsource/ktroid/internal/logx"
	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/toolchain"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build, install and launch the debug app",
		Args:  cobra.NoArgs,
		RunE:  runRun,
	}
	cmd.Flags().StringVar(&deviceSerial, "device", "", "target device serial")
	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}
	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()

	adb := toolchain.NewADB(toolchain.CmdRunner{})
	serial, err := pickDevice(cmd.Context(), adb)
	if err != nil {
		return err
	}

	gr := toolchain.NewGradle(pp, toolchain.CmdRunner{})
	pterm.Info.Println("Building debug APK...")
	logger.Println("run: building debug variant")
	if err := gr.Build(cmd.Context(), toolchain.VariantDebug, os.Stdout, os.Stderr); err != nil {
		return err
	}

	apk := gr.ArtifactPath(toolchain.VariantDebug)
	pterm.Info.Printfln("Installing %s on %s...", apk, serial)
	logger.Printf("run: installing %s on %s", apk, serial)
	if err := adb.Install(cmd.Context(), serial, apk); err != nil {
		return err
	}

	appID, err := gradle.NewEngine(pp).ApplicationID()
	if err != nil || appID == gradle.Unknown {
		return fmt.Errorf("could not determine application id from %s", pp.BuildFile)
	}

	pterm.Info.Printfln("Launching %s...", appID)
	logger.Printf("run: launching %s", appID)
	if err := adb.Launch(cmd.Context(), serial, appID); err != nil {
		return err
	}
	pterm.Success.Println("App launched.")
	return nil
}
