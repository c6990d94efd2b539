package toolchain

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// VerifyResult reports the outcome of an APK signature check.
type VerifyResult struct {
	Tool     string
	Verified bool
	DebugKey bool
	Output   string
}

// Signer verifies APK signatures, preferring apksigner and falling back to
// jarsigner.
type Signer struct {
	runner Runner
}

// NewSigner returns a Signer using the given runner.
func NewSigner(runner Runner) *Signer {
	return &Signer{runner: runner}
}

// Verify checks the signature of the APK at apkPath. ErrToolNotFound is
// returned when neither verification tool can be located.
func (s *Signer) Verify(ctx context.Context, apkPath string) (VerifyResult, error) {
	if apksigner, ok := locateApksigner(); ok {
		return s.verifyWithApksigner(ctx, apksigner, apkPath)
	}
	return s.verifyWithJarsigner(ctx, apkPath)
}

// locateApksigner finds apksigner on PATH, else probes the newest
// $ANDROID_HOME/build-tools version directory.
func locateApksigner() (string, bool) {
	if path, err := exec.LookPath("apksigner"); err == nil {
		return path, true
	}

	home := os.Getenv("ANDROID_HOME")
	if home == "" {
		return "", false
	}
	dir, ok := NewestVersionDir(filepath.Join(home, "build-tools"))
	if !ok {
		return "", false
	}
	candidate := filepath.Join(dir, "apksigner")
	if _, err := os.Stat(candidate); err != nil {
		return "", false
	}
	return candidate, true
}

func (s *Signer) verifyWithApksigner(ctx context.Context, apksigner, apkPath string) (VerifyResult, error) {
	res, err := s.runner.Run(ctx, apksigner, []string{"verify", "--verbose", apkPath}, RunOptions{})
	result := VerifyResult{Tool: "apksigner", Output: string(res.Stdout) + string(res.Stderr)}
	if err != nil {
		if errors.Is(err, ErrToolNotFound) {
			return result, wrapRunErr("apksigner", res, err)
		}
		// Non-zero exit means the signature did not verify.
		return result, nil
	}
	result.Verified = true
	return result, nil
}

func (s *Signer) verifyWithJarsigner(ctx context.Context, apkPath string) (VerifyResult, error) {
	res, err := s.runner.Run(ctx, "jarsigner", []string{"-verify", "-verbose", "-certs", apkPath}, RunOptions{})
	result := VerifyResult{Tool: "jarsigner", Output: string(res.Stdout)}
	if err != nil && errors.Is(err, ErrToolNotFound) {
		return result, ErrToolNotFound
	}

	out := string(res.Stdout)
	result.Verified = strings.Contains(out, "jar verified")
	result.DebugKey = strings.Contains(out, "CN=Android Debug")
	return result, nil
}
