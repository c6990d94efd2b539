package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/scaffold"
)

var (
	signKeystore  string
	signStorePass string
	signKeyAlias  string
	signKeyPass   string
	signForce     bool
)

func newSigningCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signing",
		Short: "Write release signing configuration",
		Long:  "Write signing.properties for release builds. The keystore itself must already exist; generate one with keytool.",
		Args:  cobra.NoArgs,
		RunE:  runSigning,
	}
	cmd.Flags().StringVar(&signKeystore, "keystore", "", "path to the keystore file (relative to the app module or absolute)")
	cmd.Flags().StringVar(&signStorePass, "store-pass", "", "keystore password")
	cmd.Flags().StringVar(&signKeyAlias, "key-alias", "", "key alias inside the keystore")
	cmd.Flags().StringVar(&signKeyPass, "key-pass", "", "key password (defaults to the store password)")
	cmd.Flags().BoolVar(&signForce, "force", false, "overwrite an existing signing.properties")
	_ = cmd.MarkFlagRequired("keystore")
	_ = cmd.MarkFlagRequired("store-pass")
	_ = cmd.MarkFlagRequired("key-alias")
	return cmd
}

func runSigning(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	exists, err := paths.FileExists(pp.SigningFile)
	if err != nil {
		return err
	}
	if exists && !signForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", pp.SigningFile)
	}

	keyPass := signKeyPass
	if keyPass == "" {
		keyPass = signStorePass
	}
	cfg := scaffold.SigningConfig{
		StoreFile:     signKeystore,
		StorePassword: signStorePass,
		KeyAlias:      signKeyAlias,
		KeyPassword:   keyPass,
	}
	if err := scaffold.WriteSigningProperties(pp.SigningFile, cfg); err != nil {
		return fmt.Errorf("write signing properties: %w", err)
	}

	pterm.Success.Printfln("Wrote %s", pp.SigningFile)
	pterm.Info.Println("Release builds will now be signed with the configured key.")
	return nil
}
