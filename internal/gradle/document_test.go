package gradle

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) *Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	doc, err := LoadDocument(path)
	require.NoError(t, err)
	return doc
}

func TestDocumentRoundTrip(t *testing.T) {
	cases := []string{
		"a\nb\nc\n",
		"a\nb\nc",       // no trailing newline
		"\n\n  mixed \t\n", // whitespace preserved
		"",
	}

	for _, content := range cases {
		doc := writeDoc(t, content)
		require.NoError(t, doc.Save())
		data, err := os.ReadFile(doc.path)
		require.NoError(t, err)
		require.Equal(t, content, string(data), "round trip of %q", content)
	}
}

func TestInsertBefore(t *testing.T) {
	doc := writeDoc(t, "one\ntwo\nthree\n")
	ok := doc.InsertBefore(func(l string) bool { return l == "two" }, "inserted")
	require.True(t, ok)
	require.Equal(t, []string{"one", "inserted", "two", "three"}, doc.Lines())
}

func TestInsertBeforeNoAnchor(t *testing.T) {
	doc := writeDoc(t, "one\n")
	ok := doc.InsertBefore(func(l string) bool { return false }, "inserted")
	require.False(t, ok)
	require.Equal(t, []string{"one"}, doc.Lines())
}

func TestInsertBeforeWithinSkipsEarlierClosers(t *testing.T) {
	content := "android {\n}\n\ndependencies {\n    api 'x:y:1'\n}\n"
	doc := writeDoc(t, content)

	ok := doc.InsertBeforeWithin(
		func(l string) bool { return strings.Contains(l, "dependencies {") },
		func(l string) bool { return strings.Contains(l, "}") },
		"    new",
	)
	require.True(t, ok)
	require.Equal(t, []string{"android {", "}", "", "dependencies {", "    api 'x:y:1'", "    new", "}"}, doc.Lines())
}

func TestRemoveMatchingReturnsRemoved(t *testing.T) {
	doc := writeDoc(t, "keep\ndrop\nkeep\ndrop\n")
	removed := doc.RemoveMatching(func(l string) bool { return l == "drop" })
	require.Equal(t, []string{"drop", "drop"}, removed)
	require.Equal(t, []string{"keep", "keep"}, doc.Lines())
}

func TestReplaceFirstOnlyTouchesFirstMatch(t *testing.T) {
	doc := writeDoc(t, "v 1\nv 2\n")
	re := regexp.MustCompile(`v \d`)
	ok := doc.ReplaceFirst(re, func(string) string { return "v 9" })
	require.True(t, ok)
	require.Equal(t, []string{"v 9", "v 2"}, doc.Lines())
}

func TestSavePreservesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o755))
	doc, err := LoadDocument(path)
	require.NoError(t, err)
	require.NoError(t, doc.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}
