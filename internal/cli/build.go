package cli

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/logx"
	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/toolchain"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "build [debug|release|bundle]",
		Short:     "Build the project",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"debug", "release", "bundle"},
		RunE:      runBuild,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	variant := toolchain.VariantDebug
	if len(args) > 0 {
		variant = toolchain.Variant(args[0])
	}

	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()

	gradle := toolchain.NewGradle(pp, toolchain.CmdRunner{})

	pterm.Info.Printfln("Running: gradlew %s", variant.Task())
	logger.Printf("build start: variant=%s", variant)

	if err := gradle.Build(cmd.Context(), variant, os.Stdout, os.Stderr); err != nil {
		logger.Printf("build failed: %v", err)
		return fmt.Errorf("build failed: %w", err)
	}

	artifact := gradle.ArtifactPath(variant)
	logger.Printf("build ok: artifact=%s", artifact)
	pterm.Success.Println("Build successful.")
	pterm.Success.Printfln("Output: %s", artifact)

	if variant == toolchain.VariantRelease {
		verifyArtifact(cmd, artifact)
	}
	return nil
}

// verifyArtifact checks the release signature; problems are reported but do
// not fail the build that already succeeded.
func verifyArtifact(cmd *cobra.Command, artifact string) {
	if _, err := os.Stat(artifact); err != nil {
		pterm.Warning.Printfln("Could not find APK to verify at %s", artifact)
		return
	}

	signer := toolchain.NewSigner(toolchain.CmdRunner{})
	res, err := signer.Verify(cmd.Context(), artifact)
	if err != nil {
		pterm.Warning.Printfln("Cannot verify signature: %v", err)
		return
	}

	if res.Verified {
		pterm.Success.Printfln("APK verified (%s).", res.Tool)
		if res.DebugKey {
			pterm.Warning.Println("Signed with DEBUG key.")
		}
		return
	}
	pterm.Error.Println("APK is NOT signed properly.")
}
