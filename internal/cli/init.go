package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/scaffold"
)

var (
	initName    string
	initPackage string
	initForce   bool
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a project in the current directory",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}

	cmd.Flags().StringVar(&initName, "name", "", "Project name (defaults to the directory name)")
	cmd.Flags().StringVar(&initPackage, "package", "", "Package name (defaults to com.example.<name>)")
	cmd.Flags().BoolVar(&initForce, "force", false, "Initialize even when the directory is not empty")

	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := projectDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}

	projectName := initName
	if projectName == "" {
		projectName = filepath.Base(dir)
	}
	packageName := initPackage
	if packageName == "" {
		packageName = scaffold.DefaultPackage(projectName)
	}

	if !initForce {
		if err := scaffold.CheckDestination(dir); err != nil {
			return fmt.Errorf("%w (use --force to initialize anyway)", err)
		}
	}

	return generateProject(cmd, dir, projectName, packageName)
}
