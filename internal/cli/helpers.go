package cli

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/apfsource/ktroid/internal/config"
)

func trimmed(line string) string {
	return strings.TrimSpace(line)
}

// loadConfig resolves the build-parameter configuration, degrading to the
// defaults with a warning when the overlay file is unreadable.
func loadConfig() config.Config {
	path, err := config.Path()
	if err != nil {
		pterm.Warning.Printfln("Failed to resolve config dir: %v. Using defaults.", err)
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		pterm.Warning.Printfln("Failed to load config file: %v. Using defaults.", err)
	}
	return cfg
}
