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

func newPermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perm [shortcut|permission]",
		Short: "Manage manifest permissions",
		Long: "With no argument, lists the available shortcuts. With a shortcut or a\n" +
			"qualified permission name, adds a uses-permission element to the manifest.",
		Args: cobra.MaximumNArgs(1),
		RunE: runPermAdd,
	}

	cmd.AddCommand(newPermListCmd())
	cmd.AddCommand(newPermRemoveCmd())

	return cmd
}

func runPermAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printShortcuts(cmd, "Common Permissions:", gradle.PermissionShortcuts())
		cmd.Println("\nUsage: ktroid perm <name>")
		return nil
	}

	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	perm, added, err := gradle.NewEngine(pp).AddPermission(args[0])
	if errors.Is(err, gradle.ErrAnchorNotFound) {
		pterm.Warning.Println("No application element found; manifest left unchanged.")
		return nil
	}
	if err != nil {
		return err
	}

	if !added {
		pterm.Warning.Println("Permission already exists.")
		return nil
	}
	pterm.Info.Printfln("Adding permission: %s", perm)
	pterm.Success.Println("Permission added.")
	return nil
}

func newPermListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List declared permissions",
		Args:  cobra.NoArgs,
		RunE:  runPermList,
	}
}

func runPermList(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	perms, err := gradle.NewEngine(pp).ListPermissions()
	if err != nil {
		return err
	}

	if outputJSON {
		data, err := json.MarshalIndent(perms, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(perms) == 0 {
		pterm.Warning.Println("No permissions declared.")
		return nil
	}

	cmd.Println(headerStyle.Render("Declared Permissions:"))
	for i, perm := range perms {
		cmd.Printf("  %d. %s\n", i+1, perm)
	}
	return nil
}

func newPermRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <shortcut|permission>",
		Short: "Remove a permission from the manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  runPermRemove,
	}
}

func runPermRemove(cmd *cobra.Command, args []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	removed, err := gradle.NewEngine(pp).RemovePermission(args[0])
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		pterm.Warning.Printfln("Permission '%s' not found.", args[0])
		return nil
	}

	for _, line := range removed {
		pterm.Info.Printfln("Removing: %s", trimmed(line))
	}
	pterm.Success.Println("Permission removed.")
	return nil
}
