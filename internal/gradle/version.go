package gradle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BumpKind selects which version fields a bump touches.
type BumpKind string

const (
	BumpCode BumpKind = "code"
	BumpName BumpKind = "name"
	BumpBoth BumpKind = "both"
)

var (
	versionCodeRe = regexp.MustCompile(`versionCode\s+(\d+)`)
	versionNameRe = regexp.MustCompile(`versionName\s+"([^"]+)"`)
)

// BumpResult reports the independent outcomes of the code and name bumps.
// A sub-operation that did not run leaves its fields zero.
type BumpResult struct {
	CodeBumped bool
	CodeOld    int
	CodeNew    int
	CodeErr    error

	NameBumped bool
	NameOld    string
	NameNew    string
	NameErr    error
}

// Changed reports whether any field was rewritten.
func (r BumpResult) Changed() bool {
	return r.CodeBumped || r.NameBumped
}

// BumpVersion increments versionCode and/or versionName in the build script.
// The code bump is a successor function on the first versionCode integer. The
// name bump increments the last dot-separated component when the name has at
// least three, or appends ".1" otherwise. Sub-operations run independently:
// a missing field or malformed name is recorded on the result, not returned,
// so a "both" bump can still apply the half that succeeds.
func (e *Engine) BumpVersion(kind BumpKind) (BumpResult, error) {
	doc, err := e.loadBuildFile()
	if err != nil {
		return BumpResult{}, err
	}

	var res BumpResult

	if kind == BumpCode || kind == BumpBoth {
		res.CodeBumped, res.CodeOld, res.CodeNew, res.CodeErr = bumpCode(doc)
	}
	if kind == BumpName || kind == BumpBoth {
		res.NameBumped, res.NameOld, res.NameNew, res.NameErr = bumpName(doc)
	}

	if !res.Changed() {
		return res, nil
	}
	if err := doc.Save(); err != nil {
		return res, err
	}
	return res, nil
}

func bumpCode(doc *Document) (bool, int, int, error) {
	var oldCode, newCode int
	found := doc.ReplaceFirst(versionCodeRe, func(line string) string {
		m := versionCodeRe.FindStringSubmatch(line)
		oldCode, _ = strconv.Atoi(m[1])
		newCode = oldCode + 1
		return versionCodeRe.ReplaceAllString(line, fmt.Sprintf("versionCode %d", newCode))
	})
	if !found {
		return false, 0, 0, fmt.Errorf("versionCode not found in build script")
	}
	return true, oldCode, newCode, nil
}

func bumpName(doc *Document) (bool, string, string, error) {
	var (
		oldName, newName string
		nameErr          error
	)
	found := doc.ReplaceFirst(versionNameRe, func(line string) string {
		m := versionNameRe.FindStringSubmatch(line)
		oldName = m[1]

		newName, nameErr = NextVersionName(oldName)
		if nameErr != nil {
			return line
		}
		return versionNameRe.ReplaceAllString(line, fmt.Sprintf(`versionName "%s"`, newName))
	})
	if !found {
		return false, "", "", fmt.Errorf("versionName not found in build script")
	}
	if nameErr != nil {
		return false, oldName, "", nameErr
	}
	return true, oldName, newName, nil
}

// NextVersionName computes the successor of a dotted version name. Names with
// three or more components get their last component incremented; shorter
// names get ".1" appended. A non-numeric trailing component is rejected with
// ErrMalformedVersion.
func NextVersionName(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return name + ".1", nil
	}

	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", fmt.Errorf("%w: %q has non-numeric component %q", ErrMalformedVersion, name, parts[len(parts)-1])
	}
	parts[len(parts)-1] = strconv.Itoa(last + 1)
	return strings.Join(parts, "."), nil
}
