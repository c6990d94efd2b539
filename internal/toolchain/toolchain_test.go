package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apfsource/ktroid/internal/paths"
)

// fakeRunner records invocations and replays canned results.
type fakeRunner struct {
	calls  [][]string
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	f.calls = append(f.calls, append([]string{command}, args...))
	if opts.Stdout != nil {
		opts.Stdout.Write([]byte(f.stdout))
	}
	return RunResult{Stdout: []byte(f.stdout), Stderr: []byte(f.stderr)}, f.err
}

func TestParseDeviceList(t *testing.T) {
	out := "List of devices attached\n" +
		"emulator-5554\tdevice\n" +
		"0a1b2c3d\tunauthorized\n" +
		"9z8y7x\toffline\n" +
		"RF8M337YXX\tdevice\n" +
		"\n"

	devices := parseDeviceList(out)
	require.Equal(t, []string{"emulator-5554", "RF8M337YXX"}, devices)
}

func TestParseDeviceListEmpty(t *testing.T) {
	require.Empty(t, parseDeviceList("List of devices attached\n\n"))
}

func TestNewestVersionDir(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"33.0.2", "35.0.0", "34.0.0"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
	// Files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "99-file"), []byte("x"), 0o644))

	dir, ok := NewestVersionDir(root)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "35.0.0"), dir)
}

func TestNewestVersionDirMissingRoot(t *testing.T) {
	_, ok := NewestVersionDir(filepath.Join(t.TempDir(), "missing"))
	require.False(t, ok)
}

func TestVariantTasks(t *testing.T) {
	require.Equal(t, "assembleDebug", VariantDebug.Task())
	require.Equal(t, "assembleRelease", VariantRelease.Task())
	require.Equal(t, "bundleRelease", VariantBundle.Task())
}

func TestArtifactPathByConvention(t *testing.T) {
	pp := paths.New("/proj")
	g := NewGradle(pp, &fakeRunner{})

	require.Equal(t,
		filepath.Join("/proj", "app", "build", "outputs", "apk", "debug", "app-debug.apk"),
		g.ArtifactPath(VariantDebug))
	require.Equal(t,
		filepath.Join("/proj", "app", "build", "outputs", "bundle", "release", "app-release.aab"),
		g.ArtifactPath(VariantBundle))
	// No signed artifact exists, so the unsigned path is the convention.
	require.Equal(t,
		filepath.Join("/proj", "app", "build", "outputs", "apk", "release", "app-release-unsigned.apk"),
		g.ArtifactPath(VariantRelease))
}

func TestArtifactPathPrefersSignedRelease(t *testing.T) {
	root := t.TempDir()
	releaseDir := filepath.Join(root, "app", "build", "outputs", "apk", "release")
	require.NoError(t, os.MkdirAll(releaseDir, 0o755))
	signed := filepath.Join(releaseDir, "app-release.apk")
	require.NoError(t, os.WriteFile(signed, []byte("apk"), 0o644))

	g := NewGradle(paths.New(root), &fakeRunner{})
	require.Equal(t, signed, g.ArtifactPath(VariantRelease))
}

func TestBuildRequiresWrapper(t *testing.T) {
	g := NewGradle(paths.New(t.TempDir()), &fakeRunner{})
	err := g.Build(context.Background(), VariantDebug, nil, nil)
	require.ErrorIs(t, err, ErrWrapperMissing)
}

func TestBuildInvokesWrapperTask(t *testing.T) {
	root := t.TempDir()
	pp := paths.New(root)
	require.NoError(t, os.WriteFile(pp.Wrapper, []byte("#!/bin/sh\n"), 0o644))

	runner := &fakeRunner{}
	g := NewGradle(pp, runner)
	require.NoError(t, g.Build(context.Background(), VariantRelease, nil, nil))

	require.Len(t, runner.calls, 1)
	require.Equal(t, []string{pp.Wrapper, "assembleRelease"}, runner.calls[0])

	// EnsureWrapper makes the script executable before invocation.
	info, err := os.Stat(pp.Wrapper)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestADBInstallArgs(t *testing.T) {
	runner := &fakeRunner{}
	adb := NewADB(runner)
	require.NoError(t, adb.Install(context.Background(), "emulator-5554", "app.apk"))
	require.Equal(t, []string{"adb", "-s", "emulator-5554", "install", "-r", "app.apk"}, runner.calls[0])
}

func TestADBDevicesToolMissing(t *testing.T) {
	adb := NewADB(&fakeRunner{err: ErrToolNotFound})
	_, err := adb.Devices(context.Background())
	require.ErrorIs(t, err, ErrToolNotFound)
}

func TestJarsignerVerifyParsing(t *testing.T) {
	runner := &fakeRunner{stdout: "s 1234 META-INF/MANIFEST.MF\n\njar verified.\n\nCN=Android Debug, O=Android\n"}
	signer := NewSigner(runner)

	// Force the jarsigner path directly.
	res, err := signer.verifyWithJarsigner(context.Background(), "app.apk")
	require.NoError(t, err)
	require.Equal(t, "jarsigner", res.Tool)
	require.True(t, res.Verified)
	require.True(t, res.DebugKey)
}

func TestJarsignerVerifyFailure(t *testing.T) {
	runner := &fakeRunner{stdout: "jar is unsigned.\n"}
	res, err := NewSigner(runner).verifyWithJarsigner(context.Background(), "app.apk")
	require.NoError(t, err)
	require.False(t, res.Verified)
}

func TestLineFilterWriter(t *testing.T) {
	var out strings.Builder
	w := &lineFilterWriter{out: &out, substr: "com.example"}

	w.Write([]byte("01-01 10:00:00 I/foo: com.exa"))
	w.Write([]byte("mple hit\n01-01 10:00:01 I/bar: other\n"))

	require.Equal(t, "01-01 10:00:00 I/foo: com.example hit\n", out.String())
}
