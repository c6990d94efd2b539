package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoDevices indicates no device in the ready state is connected.
var ErrNoDevices = errors.New("no connected devices found")

// ADB wraps the android debug bridge for device operations.
type ADB struct {
	runner Runner
}

// NewADB returns an ADB façade using the given runner.
func NewADB(runner Runner) *ADB {
	return &ADB{runner: runner}
}

// Devices returns the serials of connected devices in the ready state.
// Offline, unauthorized and emulator-booting rows are dropped.
func (a *ADB) Devices(ctx context.Context) ([]string, error) {
	res, err := a.runner.Run(ctx, "adb", []string{"devices"}, RunOptions{})
	if err != nil {
		return nil, wrapRunErr("adb", res, err)
	}
	return parseDeviceList(string(res.Stdout)), nil
}

// parseDeviceList extracts serials from `adb devices` output: skip the
// header, keep whitespace-delimited rows whose second column is the literal
// device status token.
func parseDeviceList(out string) []string {
	var devices []string
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "device" {
			devices = append(devices, fields[0])
		}
	}
	return devices
}

// Install installs the APK on the given device, replacing any existing
// installation.
func (a *ADB) Install(ctx context.Context, serial, apkPath string) error {
	res, err := a.runner.Run(ctx, "adb", []string{"-s", serial, "install", "-r", apkPath}, RunOptions{})
	return wrapRunErr("adb install", res, err)
}

// Uninstall removes the package from the given device.
func (a *ADB) Uninstall(ctx context.Context, serial, packageName string) error {
	res, err := a.runner.Run(ctx, "adb", []string{"-s", serial, "uninstall", packageName}, RunOptions{})
	return wrapRunErr("adb uninstall", res, err)
}

// Launch starts the app's MainActivity on the given device.
func (a *ADB) Launch(ctx context.Context, serial, appID string) error {
	component := fmt.Sprintf("%s/.MainActivity", appID)
	res, err := a.runner.Run(ctx, "adb", []string{"-s", serial, "shell", "am", "start", "-n", component}, RunOptions{})
	return wrapRunErr("adb shell am start", res, err)
}

// Pidof returns the PID of the running app, or "" when it is not running.
func (a *ADB) Pidof(ctx context.Context, serial, appID string) (string, error) {
	res, err := a.runner.Run(ctx, "adb", []string{"-s", serial, "shell", "pidof", appID}, RunOptions{})
	if err != nil {
		// pidof exits non-zero when the process is absent.
		if errors.Is(err, ErrToolNotFound) {
			return "", wrapRunErr("adb", res, err)
		}
		return "", nil
	}
	return strings.TrimSpace(string(res.Stdout)), nil
}

// Logcat streams device logs to out until ctx is cancelled. With a non-empty
// pid the stream is PID-filtered; otherwise every line containing filter is
// forwarded.
func (a *ADB) Logcat(ctx context.Context, serial, pid, filter string, out io.Writer) error {
	args := []string{"-s", serial, "logcat", "-v", "time"}
	if pid != "" {
		args = append(args, "--pid="+pid)
	}

	dest := out
	if pid == "" && filter != "" {
		dest = &lineFilterWriter{out: out, substr: filter}
	}

	res, err := a.runner.Run(ctx, "adb", args, RunOptions{Stdout: dest})
	if ctx.Err() != nil {
		// User interrupt is the normal way to stop a log stream.
		return nil
	}
	return wrapRunErr("adb logcat", res, err)
}

// lineFilterWriter forwards only lines containing substr. Partial lines are
// buffered until their newline arrives.
type lineFilterWriter struct {
	out    io.Writer
	substr string
	buf    strings.Builder
}

func (w *lineFilterWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	text := w.buf.String()

	for {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			break
		}
		line := text[:idx+1]
		text = text[idx+1:]
		if strings.Contains(line, w.substr) {
			if _, err := io.WriteString(w.out, line); err != nil {
				return len(p), err
			}
		}
	}

	w.buf.Reset()
	w.buf.WriteString(text)
	return len(p), nil
}
