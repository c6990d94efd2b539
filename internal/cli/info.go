package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/gradle"
	"github.com/apfsource/ktroid/internal/paths"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show project info from the build script",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	info, err := gradle.NewEngine(pp).Info()
	if err != nil {
		return err
	}

	if outputJSON {
		payload := map[string]string{
			"application_id": info.ApplicationID,
			"version_code":   info.VersionCode,
			"version_name":   info.VersionName,
			"min_sdk":        info.MinSdk,
			"target_sdk":     info.TargetSdk,
			"compile_sdk":    info.CompileSdk,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(headerStyle.Render("Project Info:"))
	rows := []struct{ label, value string }{
		{"Application ID", info.ApplicationID},
		{"Version Code", info.VersionCode},
		{"Version Name", info.VersionName},
		{"Min SDK", info.MinSdk},
		{"Target SDK", info.TargetSdk},
		{"Compile SDK", info.CompileSdk},
	}
	for _, row := range rows {
		cmd.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-15s", row.label+":")), row.value)
	}
	return nil
}
