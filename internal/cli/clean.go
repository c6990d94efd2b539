package cli

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/toolchain"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean the project build outputs",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	gradle := toolchain.NewGradle(pp, toolchain.CmdRunner{})
	pterm.Info.Println("Running clean...")
	if err := gradle.Clean(cmd.Context(), os.Stdout, os.Stderr); err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	pterm.Success.Println("Clean complete.")
	return nil
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "test [unit|instrumented|all]",
		Short:     "Run project tests",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"unit", "instrumented", "all"},
		RunE:      runTest,
	}
}

func runTest(cmd *cobra.Command, args []string) error {
	kind := toolchain.TestUnit
	if len(args) > 0 {
		kind = toolchain.TestKind(args[0])
	}

	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	gradle := toolchain.NewGradle(pp, toolchain.CmdRunner{})
	pterm.Info.Printfln("Running %s tests...", kind)
	if err := gradle.Test(cmd.Context(), kind, os.Stdout, os.Stderr); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	pterm.Success.Println("Tests passed.")
	return nil
}
