package gradle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apfsource/ktroid/internal/paths"
)

const sampleBuildGradle = `plugins {
    id 'com.android.application'
    id 'org.jetbrains.kotlin.android'
}

android {
    namespace 'com.example.demo'
    compileSdk 35

    defaultConfig {
        applicationId "com.example.demo"
        minSdk 21
        targetSdk 35
        versionCode 7
        versionName "1.0.3"
    }
}

dependencies {
    implementation 'androidx.core:core-ktx:1.12.0'
    implementation 'com.google.android.material:material:1.11.0'
    testImplementation 'junit:junit:4.13.2'
}
`

const sampleManifest = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android">

    <uses-permission android:name="android.permission.INTERNET" />

    <application
        android:allowBackup="true"
        android:label="Demo">
        <activity android:name=".MainActivity" />
    </application>

</manifest>
`

func newTestProject(t *testing.T) (paths.ProjectPaths, *Engine) {
	t.Helper()
	pp := paths.New(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(pp.ManifestFile), 0o755))
	require.NoError(t, os.WriteFile(pp.BuildFile, []byte(sampleBuildGradle), 0o644))
	require.NoError(t, os.WriteFile(pp.ManifestFile, []byte(sampleManifest), 0o644))
	return pp, NewEngine(pp)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestAddDependencyShortcut(t *testing.T) {
	pp, eng := newTestProject(t)

	coord, err := eng.AddDependency("Glide")
	require.NoError(t, err)
	require.Equal(t, "com.github.bumptech.glide:glide:4.16.0", coord)

	content := readFile(t, pp.BuildFile)
	require.Contains(t, content, "    implementation 'com.github.bumptech.glide:glide:4.16.0'\n}")
}

func TestAddDependencyAppendsBeforeClosingBrace(t *testing.T) {
	pp, eng := newTestProject(t)

	// Each add appends one line; insertion order is preserved and the rest
	// of the file is untouched.
	_, err := eng.AddDependency("com.foo:bar:1.0")
	require.NoError(t, err)
	_, err = eng.AddDependency("com.foo:bar:1.0")
	require.NoError(t, err)

	deps, err := eng.ListDependencies()
	require.NoError(t, err)
	require.Len(t, deps, 5)
	require.Equal(t, "com.foo:bar:1.0", deps[3].Coordinate)
	require.Equal(t, "com.foo:bar:1.0", deps[4].Coordinate)

	content := readFile(t, pp.BuildFile)
	require.Contains(t, content, "android {")
	require.Contains(t, content, `versionName "1.0.3"`)
}

func TestAddDependencyMissingBlock(t *testing.T) {
	pp, eng := newTestProject(t)
	require.NoError(t, os.WriteFile(pp.BuildFile, []byte("android {\n}\n"), 0o644))
	before := readFile(t, pp.BuildFile)

	_, err := eng.AddDependency("gson")
	require.ErrorIs(t, err, ErrBlockNotFound)
	require.Equal(t, before, readFile(t, pp.BuildFile))
}

func TestAddDependencyMissingFile(t *testing.T) {
	pp := paths.New(t.TempDir())
	eng := NewEngine(pp)

	_, err := eng.AddDependency("gson")
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestListDependencies(t *testing.T) {
	_, eng := newTestProject(t)

	deps, err := eng.ListDependencies()
	require.NoError(t, err)
	require.Len(t, deps, 3)
	require.Equal(t, Dependency{Ordinal: 1, Scope: "implementation", Coordinate: "androidx.core:core-ktx:1.12.0"}, deps[0])
	require.Equal(t, Dependency{Ordinal: 3, Scope: "testImplementation", Coordinate: "junit:junit:4.13.2"}, deps[2])
}

func TestListDependenciesEmptyBlockDoesNotMutate(t *testing.T) {
	pp, eng := newTestProject(t)
	original := "dependencies {\n}\n"
	require.NoError(t, os.WriteFile(pp.BuildFile, []byte(original), 0o644))

	for i := 0; i < 3; i++ {
		deps, err := eng.ListDependencies()
		require.NoError(t, err)
		require.Empty(t, deps)
	}
	require.Equal(t, original, readFile(t, pp.BuildFile))
}

func TestRemoveDependency(t *testing.T) {
	pp, eng := newTestProject(t)

	removed, err := eng.RemoveDependency("material")
	require.NoError(t, err)
	require.Len(t, removed, 1)

	deps, err := eng.ListDependencies()
	require.NoError(t, err)
	require.Len(t, deps, 2)
	require.Equal(t, "androidx.core:core-ktx:1.12.0", deps[0].Coordinate)
	require.Equal(t, "junit:junit:4.13.2", deps[1].Coordinate)

	content := readFile(t, pp.BuildFile)
	require.NotContains(t, content, "material")
}

func TestRemoveDependencyNotFoundLeavesFileIdentical(t *testing.T) {
	pp, eng := newTestProject(t)
	before := readFile(t, pp.BuildFile)

	removed, err := eng.RemoveDependency("nonexistent")
	require.NoError(t, err)
	require.Empty(t, removed)
	require.Equal(t, before, readFile(t, pp.BuildFile))
}

func TestRemoveDependencySubstringOverMatch(t *testing.T) {
	_, eng := newTestProject(t)

	// A shared group-id substring removes every matching declaration.
	removed, err := eng.RemoveDependency("junit")
	require.NoError(t, err)
	require.Len(t, removed, 1)
}

func TestAddPermissionIdempotent(t *testing.T) {
	pp, eng := newTestProject(t)

	perm, added, err := eng.AddPermission("camera")
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, "android.permission.CAMERA", perm)
	afterFirst := readFile(t, pp.ManifestFile)

	_, added, err = eng.AddPermission("camera")
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, afterFirst, readFile(t, pp.ManifestFile))
}

func TestAddPermissionInsertsBeforeApplication(t *testing.T) {
	pp, eng := newTestProject(t)

	_, _, err := eng.AddPermission("android.permission.VIBRATE")
	require.NoError(t, err)

	doc, err := LoadDocument(pp.ManifestFile)
	require.NoError(t, err)
	lines := doc.Lines()

	permIdx, appIdx := -1, -1
	for i, line := range lines {
		if permIdx == -1 && line == `    <uses-permission android:name="android.permission.VIBRATE" />` {
			permIdx = i
		}
		if appIdx == -1 && strings.Contains(line, "<application") {
			appIdx = i
		}
	}
	require.NotEqual(t, -1, permIdx)
	require.NotEqual(t, -1, appIdx)
	require.Equal(t, appIdx-1, permIdx)
}

func TestAddPermissionUnknownShortcut(t *testing.T) {
	_, eng := newTestProject(t)

	_, _, err := eng.AddPermission("nosuchperm")
	require.ErrorIs(t, err, ErrUnknownPermission)
}

func TestRemovePermission(t *testing.T) {
	pp, eng := newTestProject(t)

	removed, err := eng.RemovePermission("internet")
	require.NoError(t, err)
	require.Len(t, removed, 1)
	require.NotContains(t, readFile(t, pp.ManifestFile), "android.permission.INTERNET")
}

func TestRemovePermissionNotFound(t *testing.T) {
	pp, eng := newTestProject(t)
	before := readFile(t, pp.ManifestFile)

	removed, err := eng.RemovePermission("camera")
	require.NoError(t, err)
	require.Empty(t, removed)
	require.Equal(t, before, readFile(t, pp.ManifestFile))
}

func TestListPermissions(t *testing.T) {
	_, eng := newTestProject(t)

	_, _, err := eng.AddPermission("record_audio")
	require.NoError(t, err)

	perms, err := eng.ListPermissions()
	require.NoError(t, err)
	require.Equal(t, []string{"android.permission.INTERNET", "android.permission.RECORD_AUDIO"}, perms)
}

func TestBumpVersionCodeIsSuccessor(t *testing.T) {
	pp, eng := newTestProject(t)

	res, err := eng.BumpVersion(BumpCode)
	require.NoError(t, err)
	require.True(t, res.CodeBumped)
	require.Equal(t, 7, res.CodeOld)
	require.Equal(t, 8, res.CodeNew)
	require.Contains(t, readFile(t, pp.BuildFile), "versionCode 8")

	res, err = eng.BumpVersion(BumpCode)
	require.NoError(t, err)
	require.Equal(t, 9, res.CodeNew)
}

func TestBumpVersionName(t *testing.T) {
	pp, eng := newTestProject(t)

	res, err := eng.BumpVersion(BumpName)
	require.NoError(t, err)
	require.True(t, res.NameBumped)
	require.Equal(t, "1.0.3", res.NameOld)
	require.Equal(t, "1.0.4", res.NameNew)
	require.Contains(t, readFile(t, pp.BuildFile), `versionName "1.0.4"`)
	// The code field is untouched by a name-only bump.
	require.Contains(t, readFile(t, pp.BuildFile), "versionCode 7")
}

func TestBumpVersionBothIndependent(t *testing.T) {
	pp, eng := newTestProject(t)

	res, err := eng.BumpVersion(BumpBoth)
	require.NoError(t, err)
	require.True(t, res.CodeBumped)
	require.True(t, res.NameBumped)

	content := readFile(t, pp.BuildFile)
	require.Contains(t, content, "versionCode 8")
	require.Contains(t, content, `versionName "1.0.4"`)
}

func TestBumpVersionMalformedNameStillBumpsCode(t *testing.T) {
	pp, eng := newTestProject(t)
	script := "versionCode 3\nversionName \"1.0.beta\"\n"
	require.NoError(t, os.WriteFile(pp.BuildFile, []byte(script), 0o644))

	res, err := eng.BumpVersion(BumpBoth)
	require.NoError(t, err)
	require.True(t, res.CodeBumped)
	require.False(t, res.NameBumped)
	require.ErrorIs(t, res.NameErr, ErrMalformedVersion)

	content := readFile(t, pp.BuildFile)
	require.Contains(t, content, "versionCode 4")
	require.Contains(t, content, `versionName "1.0.beta"`)
}

func TestBumpVersionCodeMissingIsWarning(t *testing.T) {
	pp, eng := newTestProject(t)
	require.NoError(t, os.WriteFile(pp.BuildFile, []byte("versionName \"2\"\n"), 0o644))

	res, err := eng.BumpVersion(BumpBoth)
	require.NoError(t, err)
	require.False(t, res.CodeBumped)
	require.Error(t, res.CodeErr)
	require.True(t, res.NameBumped)
	require.Equal(t, "2.1", res.NameNew)
}

func TestNextVersionName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1.0.3", want: "1.0.4"},
		{in: "2", want: "2.1"},
		{in: "1.9", want: "1.9.1"},
		{in: "0.0.0", want: "0.0.1"},
		{in: "1.2.3.4", want: "1.2.3.5"},
		{in: "1.0.beta", wantErr: true},
	}

	for _, tc := range cases {
		got, err := NextVersionName(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrMalformedVersion, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestInfoExtraction(t *testing.T) {
	_, eng := newTestProject(t)

	info, err := eng.Info()
	require.NoError(t, err)
	require.Equal(t, "com.example.demo", info.ApplicationID)
	require.Equal(t, "7", info.VersionCode)
	require.Equal(t, "1.0.3", info.VersionName)
	require.Equal(t, "21", info.MinSdk)
	require.Equal(t, "35", info.TargetSdk)
	require.Equal(t, "35", info.CompileSdk)
}

func TestInfoAssignmentStyle(t *testing.T) {
	pp, eng := newTestProject(t)
	script := "applicationId = \"com.assigned.app\"\nminSdk = 24\n"
	require.NoError(t, os.WriteFile(pp.BuildFile, []byte(script), 0o644))

	info, err := eng.Info()
	require.NoError(t, err)
	require.Equal(t, "com.assigned.app", info.ApplicationID)
	require.Equal(t, "24", info.MinSdk)
}

func TestInfoMissingFieldDegradesToUnknown(t *testing.T) {
	pp, eng := newTestProject(t)
	script := "applicationId \"com.example.demo\"\ntargetSdk 35\n"
	require.NoError(t, os.WriteFile(pp.BuildFile, []byte(script), 0o644))

	info, err := eng.Info()
	require.NoError(t, err)
	require.Equal(t, Unknown, info.MinSdk)
	require.Equal(t, "com.example.demo", info.ApplicationID)
	require.Equal(t, "35", info.TargetSdk)
}

func TestResolveDependencyCaseInsensitive(t *testing.T) {
	require.Equal(t, "com.google.code.gson:gson:2.10.1", ResolveDependency("GSON"))
	require.Equal(t, "com.custom:lib:1.0", ResolveDependency("com.custom:lib:1.0"))
}

func TestResolvePermission(t *testing.T) {
	perm, err := ResolvePermission("Internet")
	require.NoError(t, err)
	require.Equal(t, "android.permission.INTERNET", perm)

	perm, err = ResolvePermission("com.custom.PERMISSION")
	require.NoError(t, err)
	require.Equal(t, "com.custom.PERMISSION", perm)

	_, err = ResolvePermission("notaperm")
	require.ErrorIs(t, err, ErrUnknownPermission)
}
