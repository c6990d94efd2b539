package gradle

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Unknown is the placeholder returned for fields absent from the build script.
const Unknown = "Unknown"

// Info holds the fields extracted from the build script for display. Missing
// fields degrade to Unknown rather than failing extraction.
type Info struct {
	ApplicationID string
	VersionCode   string
	VersionName   string
	MinSdk        string
	TargetSdk     string
	CompileSdk    string
}

// Info extracts the project fields from the build script. This is the single
// resolution routine shared by every command that needs a field such as the
// application id.
func (e *Engine) Info() (Info, error) {
	content, err := os.ReadFile(e.paths.BuildFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Info{}, ErrConfigNotFound
		}
		return Info{}, fmt.Errorf("read build script: %w", err)
	}

	text := string(content)
	return Info{
		ApplicationID: extractField(text, "applicationId"),
		VersionCode:   extractField(text, "versionCode"),
		VersionName:   extractField(text, "versionName"),
		MinSdk:        extractField(text, "minSdk"),
		TargetSdk:     extractField(text, "targetSdk"),
		CompileSdk:    extractField(text, "compileSdk"),
	}, nil
}

// ApplicationID returns the applicationId field, or Unknown when absent.
func (e *Engine) ApplicationID() (string, error) {
	info, err := e.Info()
	if err != nil {
		return "", err
	}
	return info.ApplicationID, nil
}

// extractField tries the space-separated shape first, then the =-assigned
// shape, returning the first match or Unknown.
func extractField(content, key string) string {
	spaceRe := regexp.MustCompile(regexp.QuoteMeta(key) + `\s+"?([^"=\n]+)"?`)
	if m := spaceRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}

	assignRe := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=\s*"?([^"\n]+)"?`)
	if m := assignRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}

	return Unknown
}
