package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/gradle"
	"github.com/apfsource/ktroid/internal/paths"
)

func newDepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep [shortcut|coordinate]",
		Short: "Manage build dependencies",
		Long: "With no argument, lists the available shortcuts. With a shortcut or a\n" +
			"Maven coordinate, appends an implementation line to the dependencies block.",
		Args: cobra.MaximumNArgs(1),
		RunE: runDepAdd,
	}

	cmd.AddCommand(newDepListCmd())
	cmd.AddCommand(newDepRemoveCmd())

	return cmd
}

func runDepAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printShortcuts(cmd, "Available Shortcuts:", gradle.DependencyShortcuts())
		cmd.Println("\nUsage:")
		cmd.Println("  ktroid dep <shortcut>   (e.g., ktroid dep glide)")
		cmd.Println("  ktroid dep <coord>      (e.g., ktroid dep com.foo:bar:1.2)")
		return nil
	}

	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}
	eng := gradle.NewEngine(pp)

	coord, err := eng.AddDependency(args[0])
	if errors.Is(err, gradle.ErrBlockNotFound) {
		pterm.Warning.Println("No dependencies block found; build script left unchanged.")
		return nil
	}
	if err != nil {
		return err
	}

	pterm.Info.Printfln("Adding dependency: %s", coord)
	pterm.Success.Println("Dependency added successfully.")
	return nil
}

func newDepListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List declared dependencies",
		Args:  cobra.NoArgs,
		RunE:  runDepList,
	}
}

func runDepList(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	deps, err := gradle.NewEngine(pp).ListDependencies()
	if err != nil {
		return err
	}

	if outputJSON {
		data, err := json.MarshalIndent(deps, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(deps) == 0 {
		pterm.Warning.Println("No dependencies found.")
		return nil
	}

	cmd.Println(headerStyle.Render("Current Dependencies:"))
	for _, dep := range deps {
		cmd.Printf("  %d. %s %s\n", dep.Ordinal, scopeStyle.Render("["+dep.Scope+"]"), dep.Coordinate)
	}
	return nil
}

func newDepRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pattern>",
		Short: "Remove dependencies matching a pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  runDepRemove,
	}
}

func runDepRemove(cmd *cobra.Command, args []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	removed, err := gradle.NewEngine(pp).RemoveDependency(args[0])
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		pterm.Warning.Printfln("Dependency '%s' not found.", args[0])
		return nil
	}

	for _, line := range removed {
		pterm.Info.Printfln("Removing: %s", trimmed(line))
	}
	pterm.Success.Println("Dependency removed.")
	return nil
}

func printShortcuts(cmd *cobra.Command, title string, shortcuts []gradle.Shortcut) {
	cmd.Println(headerStyle.Render(title))
	for _, sc := range shortcuts {
		cmd.Printf("  %-18s %s %s\n", sc.Name, mutedStyle.Render("->"), sc.Value)
	}
}
