package gradle

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/apfsource/ktroid/internal/paths"
)

const (
	depBlockOpen  = "dependencies {"
	depBlockClose = "}"
)

// depScopes are the declaration keywords recognized inside the dependencies
// block.
var depScopes = []string{"implementation", "api", "testImplementation", "androidTestImplementation"}

var depLineRe = regexp.MustCompile(`(implementation|api|testImplementation|androidTestImplementation)\s+['"]([^'"]+)['"]`)

// Dependency is one declaration inside the dependencies block.
type Dependency struct {
	Ordinal    int
	Scope      string
	Coordinate string
}

// Engine performs line-oriented edits on a project's build script and
// manifest. Each operation is a full read-modify-write cycle; no state is
// carried between calls.
type Engine struct {
	paths paths.ProjectPaths
}

// NewEngine returns an Engine bound to the given project layout.
func NewEngine(p paths.ProjectPaths) *Engine {
	return &Engine{paths: p}
}

func (e *Engine) loadBuildFile() (*Document, error) {
	doc, err := LoadDocument(e.paths.BuildFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("read build script: %w", err)
	}
	return doc, nil
}

func (e *Engine) loadManifest() (*Document, error) {
	doc, err := LoadDocument(e.paths.ManifestFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return doc, nil
}

// AddDependency resolves name through the shortcut table (else takes it as a
// literal coordinate) and appends one implementation line at the end of the
// dependencies block. Returns the resolved coordinate. ErrBlockNotFound means
// the file has no dependencies block; nothing is written in that case.
func (e *Engine) AddDependency(name string) (string, error) {
	coord := ResolveDependency(name)

	doc, err := e.loadBuildFile()
	if err != nil {
		return coord, err
	}

	inserted := doc.InsertBeforeWithin(
		func(line string) bool { return strings.Contains(line, depBlockOpen) },
		func(line string) bool { return strings.Contains(line, depBlockClose) },
		fmt.Sprintf("    implementation '%s'", coord),
	)
	if !inserted {
		return coord, ErrBlockNotFound
	}

	if err := doc.Save(); err != nil {
		return coord, err
	}
	return coord, nil
}

// ListDependencies returns the declarations between the dependencies block
// markers in file order. An empty slice with a nil error means the block is
// empty or absent.
func (e *Engine) ListDependencies() ([]Dependency, error) {
	doc, err := e.loadBuildFile()
	if err != nil {
		return nil, err
	}

	var deps []Dependency
	inBlock := false
	for _, line := range doc.Lines() {
		if !inBlock {
			if strings.Contains(line, depBlockOpen) {
				inBlock = true
			}
			continue
		}
		if strings.Contains(line, depBlockClose) {
			break
		}
		if m := depLineRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, Dependency{
				Ordinal:    len(deps) + 1,
				Scope:      m[1],
				Coordinate: m[2],
			})
		}
	}
	return deps, nil
}

// RemoveDependency deletes every line that contains pattern together with one
// of the scope keywords. The match is a plain substring, so a pattern shared
// by several coordinates removes all of them. Returns the removed lines;
// an empty result means nothing matched and the file was left untouched.
func (e *Engine) RemoveDependency(pattern string) ([]string, error) {
	doc, err := e.loadBuildFile()
	if err != nil {
		return nil, err
	}

	removed := doc.RemoveMatching(func(line string) bool {
		if !strings.Contains(line, pattern) {
			return false
		}
		for _, scope := range depScopes {
			if strings.Contains(line, scope) {
				return true
			}
		}
		return false
	})
	if len(removed) == 0 {
		return nil, nil
	}

	if err := doc.Save(); err != nil {
		return nil, err
	}
	return removed, nil
}
