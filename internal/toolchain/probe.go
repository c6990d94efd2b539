package toolchain

import (
	"os"
	"path/filepath"
	"sort"
)

// NewestVersionDir returns the lexicographically-last subdirectory of root,
// the convention for picking the newest installed toolchain version from a
// versioned directory such as $ANDROID_HOME/build-tools.
func NewestVersionDir(root string) (string, bool) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", false
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", false
	}

	sort.Strings(names)
	return filepath.Join(root, names[len(names)-1]), true
}
