package gradle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Document models a configuration file as an ordered sequence of lines. Every
// mutation preserves the lines it does not touch byte for byte, including
// indentation and trailing content, so repeated edits never disturb the rest
// of the file.
type Document struct {
	path            string
	lines           []string
	trailingNewline bool
}

// LoadDocument reads the whole file at path into a line sequence.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := string(data)
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		content = strings.TrimSuffix(content, "\n")
	}

	var lines []string
	if content != "" || !trailing {
		lines = strings.Split(content, "\n")
	}

	return &Document{path: path, lines: lines, trailingNewline: trailing}, nil
}

// Lines returns a copy of the current line sequence.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// InsertBefore inserts line immediately before the first line matching pred
// and reports whether an anchor was found.
func (d *Document) InsertBefore(pred func(string) bool, line string) bool {
	for i, existing := range d.lines {
		if pred(existing) {
			d.lines = append(d.lines[:i], append([]string{line}, d.lines[i:]...)...)
			return true
		}
	}
	return false
}

// InsertBeforeWithin inserts line before the first line matching closePred
// that occurs after a line matching openPred. Tracking stops after the first
// insertion, so later occurrences of either marker are untouched.
func (d *Document) InsertBeforeWithin(openPred, closePred func(string) bool, line string) bool {
	inside := false
	for i, existing := range d.lines {
		if !inside {
			if openPred(existing) {
				inside = true
			}
			continue
		}
		if closePred(existing) {
			d.lines = append(d.lines[:i], append([]string{line}, d.lines[i:]...)...)
			return true
		}
	}
	return false
}

// RemoveMatching deletes every line matching pred and returns the removed
// lines in original order.
func (d *Document) RemoveMatching(pred func(string) bool) []string {
	var removed []string
	kept := d.lines[:0:0]
	for _, line := range d.lines {
		if pred(line) {
			removed = append(removed, line)
			continue
		}
		kept = append(kept, line)
	}
	d.lines = kept
	return removed
}

// ReplaceFirst applies repl to the first line matching re and reports whether
// a match was found.
func (d *Document) ReplaceFirst(re *regexp.Regexp, repl func(line string) string) bool {
	for i, line := range d.lines {
		if re.MatchString(line) {
			d.lines[i] = repl(line)
			return true
		}
	}
	return false
}

// ContainsSubstring reports whether any line contains s.
func (d *Document) ContainsSubstring(s string) bool {
	for _, line := range d.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// Save writes the full line sequence back to the source file. The content is
// written to a temp file in the same directory and renamed into place so a
// crash mid-write cannot truncate the original.
func (d *Document) Save() error {
	content := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		content += "\n"
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	// Carry over the original permissions; CreateTemp defaults to 0600.
	if info, err := os.Stat(d.path); err == nil {
		if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("chmod temp file: %w", err)
		}
	}

	if err := os.Rename(tmpName, d.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", d.path, err)
	}
	return nil
}
