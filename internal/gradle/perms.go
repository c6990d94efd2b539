package gradle

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	applicationAnchor = "<application"
	usesPermissionTag = "uses-permission"
)

var permNameRe = regexp.MustCompile(`android:name\s*=\s*"([^"]+)"`)

// AddPermission inserts a uses-permission element immediately before the
// application element. The returned bool is false when the permission is
// already declared anywhere in the manifest; the file is not rewritten then.
func (e *Engine) AddPermission(name string) (string, bool, error) {
	perm, err := ResolvePermission(name)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s", err, name)
	}

	doc, err := e.loadManifest()
	if err != nil {
		return perm, false, err
	}

	if doc.ContainsSubstring(perm) {
		return perm, false, nil
	}

	inserted := doc.InsertBefore(
		func(line string) bool { return strings.Contains(line, applicationAnchor) },
		fmt.Sprintf(`    <uses-permission android:name="%s" />`, perm),
	)
	if !inserted {
		return perm, false, ErrAnchorNotFound
	}

	if err := doc.Save(); err != nil {
		return perm, false, err
	}
	return perm, true, nil
}

// RemovePermission deletes every uses-permission line declaring the resolved
// permission. Returns the removed lines; empty means not found, file
// untouched.
func (e *Engine) RemovePermission(name string) ([]string, error) {
	perm, err := ResolvePermission(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, name)
	}

	doc, err := e.loadManifest()
	if err != nil {
		return nil, err
	}

	removed := doc.RemoveMatching(func(line string) bool {
		return strings.Contains(line, perm) && strings.Contains(line, usesPermissionTag)
	})
	if len(removed) == 0 {
		return nil, nil
	}

	if err := doc.Save(); err != nil {
		return nil, err
	}
	return removed, nil
}

// ListPermissions returns the android:name values of all uses-permission
// elements in file order.
func (e *Engine) ListPermissions() ([]string, error) {
	doc, err := e.loadManifest()
	if err != nil {
		return nil, err
	}

	var perms []string
	for _, line := range doc.Lines() {
		if !strings.Contains(line, usesPermissionTag) {
			continue
		}
		if m := permNameRe.FindStringSubmatch(line); m != nil {
			perms = append(perms, m[1])
		}
	}
	return perms, nil
}
