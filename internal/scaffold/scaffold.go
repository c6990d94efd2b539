// Package scaffold instantiates the project skeleton from embedded templates.
// Substitution is literal token replacement: a fixed ordered table of
// placeholder/value pairs is applied to each template's raw text, and tokens
// without a value are left verbatim.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apfsource/ktroid/internal/config"
	"github.com/apfsource/ktroid/internal/paths"
)

//go:embed templates
var templateFS embed.FS

// ErrAlreadyExists indicates the scaffold destination already exists.
var ErrAlreadyExists = errors.New("project directory already exists")

// Replacement is one placeholder/value pair of the substitution table.
type Replacement struct {
	Token string
	Value string
}

// templateSpec maps an embedded template to its destination, relative to the
// project root. MainActivity is special-cased because its destination depends
// on the package path.
type templateSpec struct {
	name string
	dest string
}

var templateSpecs = []templateSpec{
	{name: "settings.gradle", dest: "settings.gradle"},
	{name: "root_build.gradle", dest: "build.gradle"},
	{name: "gitignore", dest: ".gitignore"},
	{name: "gradle.properties", dest: "gradle.properties"},
	{name: "project_readme.md", dest: "README.md"},
	{name: "app_build.gradle", dest: "app/build.gradle"},
	{name: "proguard-rules.pro", dest: "app/proguard-rules.pro"},
	{name: "AndroidManifest.xml", dest: "app/src/main/AndroidManifest.xml"},
	{name: "MainActivity.kt", dest: "app/src/main/java/{package_path}/MainActivity.kt"},
	{name: "colors.xml", dest: "app/src/main/res/values/colors.xml"},
	{name: "strings.xml", dest: "app/src/main/res/values/strings.xml"},
	{name: "themes.xml", dest: "app/src/main/res/values/themes.xml"},
	{name: "data_extraction_rules.xml", dest: "app/src/main/res/xml/data_extraction_rules.xml"},
	{name: "backup_rules.xml", dest: "app/src/main/res/xml/backup_rules.xml"},
	{name: "splash_background.xml", dest: "app/src/main/res/drawable/splash_background.xml"},
	{name: "logo.xml", dest: "app/src/main/res/drawable/logo.xml"},
}

// Renderer writes the project skeleton for one project.
type Renderer struct {
	cfg         config.Config
	projectName string
	packageName string
}

// NewRenderer builds a renderer for the given project and package names using
// the supplied build parameters.
func NewRenderer(cfg config.Config, projectName, packageName string) *Renderer {
	return &Renderer{cfg: cfg, projectName: projectName, packageName: packageName}
}

// DefaultPackage derives the package name used when none is given.
func DefaultPackage(projectName string) string {
	return "com.example." + strings.ToLower(projectName)
}

// Replacements returns the ordered substitution table.
func (r *Renderer) Replacements() []Replacement {
	return []Replacement{
		{Token: "{project_name}", Value: r.projectName},
		{Token: "{package_name}", Value: r.packageName},
		{Token: "{package_path}", Value: strings.ReplaceAll(r.packageName, ".", "/")},
		{Token: "{agp_version}", Value: r.cfg.AgpVersion},
		{Token: "{kotlin_version}", Value: r.cfg.KotlinVersion},
		{Token: "{compile_sdk}", Value: r.cfg.CompileSdk},
		{Token: "{min_sdk}", Value: r.cfg.MinSdk},
		{Token: "{target_sdk}", Value: r.cfg.TargetSdk},
		{Token: "{version_code}", Value: "1"},
		{Token: "{version_name}", Value: "1.0"},
		{Token: "{java_version}", Value: r.cfg.JavaVersion},
	}
}

// Result reports which files were rendered and which templates were missing.
type Result struct {
	Rendered []string
	Missing  []string
}

// Generate creates the directory layout under root and renders every
// template. A missing template is recorded on the result and does not stop
// the other files from rendering.
func (r *Renderer) Generate(root string) (Result, error) {
	pp := paths.New(root)

	dirs := []string{
		pp.JavaDir(r.packageName),
		filepath.Join(pp.ResDir, "values"),
		filepath.Join(pp.ResDir, "xml"),
		filepath.Join(pp.ResDir, "drawable"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	table := r.Replacements()

	var res Result
	for _, spec := range templateSpecs {
		dest := apply(spec.dest, table)
		if err := r.renderOne(spec.name, filepath.Join(root, filepath.FromSlash(dest))); err != nil {
			if os.IsNotExist(err) {
				res.Missing = append(res.Missing, spec.name)
				continue
			}
			return res, err
		}
		res.Rendered = append(res.Rendered, dest)
	}
	return res, nil
}

func (r *Renderer) renderOne(name, dest string) error {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return err
	}

	content := apply(string(raw), r.Replacements())
	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// apply performs the substitutions in table order. Tokens not present in the
// table survive unchanged, which signals a template/config mismatch without
// failing the render.
func apply(text string, table []Replacement) string {
	for _, rep := range table {
		text = strings.ReplaceAll(text, rep.Token, rep.Value)
	}
	return text
}

// CheckDestination verifies that root either does not exist or is an empty
// directory, returning ErrAlreadyExists otherwise.
func CheckDestination(root string) error {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat destination: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, root)
	}
	return nil
}
