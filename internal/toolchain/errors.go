package toolchain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWrapperMissing indicates the project has no gradlew wrapper script.
var ErrWrapperMissing = errors.New("gradlew not found")

// ExternalToolError reports a non-zero exit from a wrapped process together
// with its captured diagnostic output.
type ExternalToolError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Tool)
	if diag := strings.TrimSpace(e.Stderr); diag != "" {
		msg += ": " + diag
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

func wrapRunErr(tool string, res RunResult, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrToolNotFound) {
		return fmt.Errorf("%w: %s", ErrToolNotFound, tool)
	}
	return &ExternalToolError{Tool: tool, Stderr: string(res.Stderr), Err: err}
}
