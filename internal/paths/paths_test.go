package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLayout(t *testing.T) {
	pp := New("/work/demo")

	if got, want := pp.BuildFile, filepath.Join("/work/demo", "app", "build.gradle"); got != want {
		t.Fatalf("BuildFile = %q, want %q", got, want)
	}
	if got, want := pp.ManifestFile, filepath.Join("/work/demo", "app", "src", "main", "AndroidManifest.xml"); got != want {
		t.Fatalf("ManifestFile = %q, want %q", got, want)
	}
	if got, want := pp.LogsDir, filepath.Join("/work/demo", ".ktroid", "logs"); got != want {
		t.Fatalf("LogsDir = %q, want %q", got, want)
	}
}

func TestJavaDir(t *testing.T) {
	pp := New("/work/demo")
	got := pp.JavaDir("com.example.foo")
	want := filepath.Join("/work/demo", "app", "src", "main", "java", "com", "example", "foo")
	if got != want {
		t.Fatalf("JavaDir = %q, want %q", got, want)
	}
}

func TestEnsureMetaDirs(t *testing.T) {
	pp := New(t.TempDir())
	if err := pp.EnsureMetaDirs(); err != nil {
		t.Fatalf("EnsureMetaDirs: %v", err)
	}
	info, err := os.Stat(pp.LogsDir)
	if err != nil {
		t.Fatalf("stat logs dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("logs dir is not a directory")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, err := FileExists(file)
	if err != nil || !ok {
		t.Fatalf("FileExists(%q) = %v, %v", file, ok, err)
	}

	ok, err = FileExists(filepath.Join(dir, "missing"))
	if err != nil || ok {
		t.Fatalf("FileExists(missing) = %v, %v", ok, err)
	}

	ok, err = FileExists(dir)
	if err != nil || ok {
		t.Fatalf("FileExists(dir) = %v, %v", ok, err)
	}
}
