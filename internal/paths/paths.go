package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProjectPaths captures canonical locations for a ktroid project.
type ProjectPaths struct {
	Root         string
	AppDir       string
	SrcMainDir   string
	ResDir       string
	BuildFile    string
	RootBuild    string
	SettingsFile string
	ManifestFile string
	SigningFile  string
	Wrapper      string
	MetaDir      string
	LogsDir      string
}

// Resolve determines the project root using the optional --project flag or the
// current working directory when the flag is empty.
func Resolve(projectFlag string) (ProjectPaths, error) {
	var (
		root string
		err  error
	)

	if projectFlag != "" {
		root, err = filepath.Abs(projectFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return ProjectPaths{}, fmt.Errorf("resolve project root: %w", err)
	}

	return New(root), nil
}

// New builds the canonical path set rooted at root.
func New(root string) ProjectPaths {
	appDir := filepath.Join(root, "app")
	srcMain := filepath.Join(appDir, "src", "main")
	metaDir := filepath.Join(root, ".ktroid")
	return ProjectPaths{
		Root:         root,
		AppDir:       appDir,
		SrcMainDir:   srcMain,
		ResDir:       filepath.Join(srcMain, "res"),
		BuildFile:    filepath.Join(appDir, "build.gradle"),
		RootBuild:    filepath.Join(root, "build.gradle"),
		SettingsFile: filepath.Join(root, "settings.gradle"),
		ManifestFile: filepath.Join(srcMain, "AndroidManifest.xml"),
		SigningFile:  filepath.Join(root, "signing.properties"),
		Wrapper:      filepath.Join(root, "gradlew"),
		MetaDir:      metaDir,
		LogsDir:      filepath.Join(metaDir, "logs"),
	}
}

// JavaDir returns the Kotlin source directory for the given package name, one
// path segment per dot-separated component.
func (p ProjectPaths) JavaDir(packageName string) string {
	segments := strings.Split(packageName, ".")
	return filepath.Join(append([]string{p.SrcMainDir, "java"}, segments...)...)
}

// EnsureRoot makes sure the project root exists on disk.
func (p ProjectPaths) EnsureRoot() error {
	if err := os.MkdirAll(p.Root, 0o755); err != nil {
		return fmt.Errorf("create project root: %w", err)
	}
	return nil
}

// EnsureMetaDirs creates the hidden .ktroid metadata directory and its logs
// subdirectory.
func (p ProjectPaths) EnsureMetaDirs() error {
	for _, dir := range []string{p.MetaDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GlobalDir returns the user-level ktroid directory (~/.ktroid). It creates
// the directory if it does not exist.
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, ".ktroid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global dir: %w", err)
	}
	return dir, nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
