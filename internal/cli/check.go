package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apfsource/ktroid/internal/paths"
	"github.com/apfsource/ktroid/internal/toolchain"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the development environment",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	pterm.Info.Println("Checking environment...")
	cfg := loadConfig()
	runner := toolchain.CmdRunner{}

	// Java: version lands on stderr.
	res, err := runner.Run(cmd.Context(), "java", []string{"-version"}, toolchain.RunOptions{})
	switch {
	case err != nil:
		pterm.Error.Println("Java not found in PATH.")
	default:
		versionLine := firstLine(string(res.Stderr))
		pterm.Success.Printfln("Java found: %s", versionLine)
		if !strings.Contains(versionLine, cfg.JavaVersion) && !strings.Contains(versionLine, "1."+cfg.JavaVersion) {
			pterm.Warning.Printfln("Java %s is recommended. Found version might differ.", cfg.JavaVersion)
		}
	}

	androidHome := os.Getenv("ANDROID_HOME")
	if androidHome == "" {
		pterm.Error.Println("ANDROID_HOME environment variable is NOT set.")
	} else {
		pterm.Success.Printfln("ANDROID_HOME set to: %s", androidHome)
		platformsDir := filepath.Join(androidHome, "platforms")
		entries, err := os.ReadDir(platformsDir)
		if err != nil {
			pterm.Error.Println("$ANDROID_HOME/platforms directory not found.")
		} else {
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			pterm.Success.Printfln("Android platforms found: %s", strings.Join(names, ", "))
		}
	}

	if _, err := exec.LookPath("adb"); err == nil {
		pterm.Success.Println("adb found.")
	} else if androidHome != "" {
		candidate := filepath.Join(androidHome, "platform-tools", "adb")
		if ok, _ := paths.FileExists(candidate); ok {
			pterm.Success.Println("adb found in platform-tools (not in PATH).")
		} else {
			pterm.Error.Println("adb not found.")
		}
	} else {
		pterm.Error.Println("adb not found.")
	}

	if _, err := exec.LookPath("gradle"); err == nil {
		pterm.Success.Println("System Gradle found (can be used to bootstrap wrapper).")
	} else {
		pterm.Warning.Println("System Gradle not found. 'ktroid create' requires gradle to generate the wrapper.")
	}

	pp, err := paths.Resolve(projectDir)
	if err == nil {
		if ok, _ := paths.FileExists(pp.Wrapper); ok {
			pterm.Success.Println("Local Gradle wrapper (gradlew) found.")
		}
	}

	return nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}
