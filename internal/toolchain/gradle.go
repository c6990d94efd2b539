package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apfsource/ktroid/internal/paths"
)

// Variant selects the gradle build flavor.
type Variant string

const (
	VariantDebug   Variant = "debug"
	VariantRelease Variant = "release"
	VariantBundle  Variant = "bundle"
)

// TestKind selects which gradle test tasks run.
type TestKind string

const (
	TestUnit         TestKind = "unit"
	TestInstrumented TestKind = "instrumented"
	TestAll          TestKind = "all"
)

// Gradle invokes the project's gradle wrapper for build tasks.
type Gradle struct {
	paths  paths.ProjectPaths
	runner Runner
}

// NewGradle returns a Gradle façade bound to the project layout.
func NewGradle(p paths.ProjectPaths, runner Runner) *Gradle {
	return &Gradle{paths: p, runner: runner}
}

// Task returns the gradle task for a variant.
func (v Variant) Task() string {
	switch v {
	case VariantRelease:
		return "assembleRelease"
	case VariantBundle:
		return "bundleRelease"
	default:
		return "assembleDebug"
	}
}

// ArtifactPath returns the conventional output path for a variant, relative
// to the project root. The path is derived by convention, not from tool
// output. For release builds the signed artifact is preferred when it exists
// on disk.
func (g *Gradle) ArtifactPath(v Variant) string {
	switch v {
	case VariantRelease:
		signed := filepath.Join(g.paths.Root, "app", "build", "outputs", "apk", "release", "app-release.apk")
		if _, err := os.Stat(signed); err == nil {
			return signed
		}
		return filepath.Join(g.paths.Root, "app", "build", "outputs", "apk", "release", "app-release-unsigned.apk")
	case VariantBundle:
		return filepath.Join(g.paths.Root, "app", "build", "outputs", "bundle", "release", "app-release.aab")
	default:
		return filepath.Join(g.paths.Root, "app", "build", "outputs", "apk", "debug", "app-debug.apk")
	}
}

// EnsureWrapper checks that gradlew exists in the project root and is
// executable.
func (g *Gradle) EnsureWrapper() error {
	exists, err := paths.FileExists(g.paths.Wrapper)
	if err != nil {
		return fmt.Errorf("stat gradlew: %w", err)
	}
	if !exists {
		return ErrWrapperMissing
	}
	if err := os.Chmod(g.paths.Wrapper, 0o755); err != nil {
		return fmt.Errorf("make gradlew executable: %w", err)
	}
	return nil
}

// Build runs the task for the given variant, streaming output to the given
// writers.
func (g *Gradle) Build(ctx context.Context, v Variant, stdout, stderr io.Writer) error {
	return g.invoke(ctx, stdout, stderr, v.Task())
}

// Clean runs the gradle clean task.
func (g *Gradle) Clean(ctx context.Context, stdout, stderr io.Writer) error {
	return g.invoke(ctx, stdout, stderr, "clean")
}

// Test runs the gradle test tasks for the given kind.
func (g *Gradle) Test(ctx context.Context, kind TestKind, stdout, stderr io.Writer) error {
	switch kind {
	case TestInstrumented:
		return g.invoke(ctx, stdout, stderr, "connectedAndroidTest")
	case TestAll:
		return g.invoke(ctx, stdout, stderr, "test", "connectedAndroidTest")
	default:
		return g.invoke(ctx, stdout, stderr, "test")
	}
}

func (g *Gradle) invoke(ctx context.Context, stdout, stderr io.Writer, tasks ...string) error {
	if err := g.EnsureWrapper(); err != nil {
		return err
	}
	res, err := g.runner.Run(ctx, g.paths.Wrapper, tasks, RunOptions{
		Dir:    g.paths.Root,
		Stdout: stdout,
		Stderr: stderr,
	})
	return wrapRunErr("gradlew", res, err)
}

// GenerateWrapper creates the gradle wrapper using the system gradle binary.
// Returns ErrToolNotFound when no system gradle is installed.
func (g *Gradle) GenerateWrapper(ctx context.Context, gradleVersion string) error {
	res, err := g.runner.Run(ctx, "gradle", []string{"wrapper", "--gradle-version", gradleVersion}, RunOptions{
		Dir: g.paths.Root,
	})
	return wrapRunErr("gradle", res, err)
}
