package cli

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/gradle"
	"github.com/apfsource/ktroid/internal/paths"
)

func newBumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "bump <code|name|both>",
		Short:     "Bump the version code and/or version name",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"code", "name", "both"},
		RunE:      runBump,
	}
}

func runBump(cmd *cobra.Command, args []string) error {
	kind := gradle.BumpKind(args[0])

	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	res, err := gradle.NewEngine(pp).BumpVersion(kind)
	if err != nil {
		return err
	}

	if kind == gradle.BumpCode || kind == gradle.BumpBoth {
		switch {
		case res.CodeBumped:
			pterm.Success.Printfln("Version code: %d -> %d", res.CodeOld, res.CodeNew)
		default:
			pterm.Warning.Printfln("Could not bump version code: %v", res.CodeErr)
		}
	}

	if kind == gradle.BumpName || kind == gradle.BumpBoth {
		switch {
		case res.NameBumped:
			pterm.Success.Printfln("Version name: %s -> %s", res.NameOld, res.NameNew)
		default:
			pterm.Warning.Printfln("Could not bump version name: %v", res.NameErr)
		}
	}

	if res.Changed() {
		pterm.Success.Println("build.gradle updated.")
	}

	// A malformed version name is a real failure, not a mere no-op.
	if errors.Is(res.NameErr, gradle.ErrMalformedVersion) {
		return res.NameErr
	}
	return nil
}
