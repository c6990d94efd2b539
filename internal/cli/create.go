package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/logx"
	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/scaffold"
	"github.com/apfsource/ktroid/internal/toolchain"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <project-name> [package-name]",
		Short: "Create a new Android project",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runCreate,
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	projectName := args[0]

	packageName := scaffold.DefaultPackage(projectName)
	if len(args) > 1 {
		packageName = args[1]
	}

	base := projectDir
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		base = cwd
	}
	dir := filepath.Join(base, projectName)

	if err := scaffold.CheckDestination(dir); err != nil {
		return err
	}

	pterm.Info.Printfln("Creating project '%s' at %s", projectName, dir)
	pterm.Info.Printfln("Package: %s", packageName)

	return generateProject(cmd, dir, projectName, packageName)
}

// generateProject renders the skeleton into dir and attempts wrapper
// generation. Shared by create and init.
func generateProject(cmd *cobra.Command, dir, projectName, packageName string) error {
	cfg := loadConfig()

	renderer := scaffold.NewRenderer(cfg, projectName, packageName)
	res, err := renderer.Generate(dir)
	if err != nil {
		return err
	}
	for _, name := range res.Missing {
		pterm.Warning.Printfln("Template missing, skipped: %s", name)
	}

	pp := paths.New(dir)
	if err := pp.EnsureMetaDirs(); err != nil {
		return err
	}
	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("ktroid scaffold: project=%s package=%s files=%d", projectName, packageName, len(res.Rendered))

	// Wrapper generation needs a system gradle; its absence must not fail
	// the scaffold.
	pterm.Info.Println("Generating Gradle wrapper...")
	gradle := toolchain.NewGradle(pp, toolchain.CmdRunner{})
	if err := gradle.GenerateWrapper(cmd.Context(), cfg.GradleVersion); err != nil {
		pterm.Warning.Printfln("Failed to generate gradle wrapper: %v", err)
		logger.Printf("wrapper generation failed: %v", err)
	}

	pterm.Success.Printfln("Project '%s' configured successfully.", projectName)
	return nil
}
