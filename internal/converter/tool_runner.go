package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"file-converter/internal/model"
)

// Runner executes external converter tools. Every adapter that shells out
// composes on top of this one primitive, which keeps timeout handling and
// stderr capture in a single place and lets tests substitute a fake.
type Runner interface {
	// Run executes name with args, bounded by timeout. dir, when non-empty,
	// is the working directory. The returned string is whatever the tool
	// wrote to stderr, untruncated; callers decide how much of it to keep.
	Run(ctx context.Context, name string, args []string, dir string, timeout time.Duration) (string, error)

	// Available reports whether the named tool can be found.
	Available(name string) bool
}

// execRunner runs tools through os/exec. Tool paths can be overridden per
// tool name, e.g. to point libreoffice at a specific installation.
type execRunner struct {
	paths map[string]string
}

// NewRunner creates a Runner backed by os/exec. paths maps tool names to
// explicit executable paths; unlisted tools are resolved via $PATH.
func NewRunner(paths map[string]string) Runner {
	if paths == nil {
		paths = make(map[string]string)
	}
	return &execRunner{paths: paths}
}

func (r *execRunner) resolve(name string) string {
	if path, ok := r.paths[name]; ok && path != "" {
		return path
	}
	return name
}

func (r *execRunner) Available(name string) bool {
	_, err := exec.LookPath(r.resolve(name))
	return err == nil
}

func (r *execRunner) Run(ctx context.Context, name string, args []string, dir string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.resolve(name), args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stderr.String(), nil
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return stderr.String(), fmt.Errorf("%w: %s after %s", ErrExternalToolTimeout, name, timeout)
	case errors.Is(err, exec.ErrNotFound):
		return stderr.String(), fmt.Errorf("%w: %s is not installed", ErrBackendUnavailable, name)
	default:
		return stderr.String(), fmt.Errorf("%w: %s: %v", ErrExternalTool, name, err)
	}
}

// DetectCapabilities probes which optional external tools are installed.
// Called once at startup; the result is read-only afterward.
func DetectCapabilities(r Runner) model.Capabilities {
	return model.Capabilities{
		FFmpeg:      r.Available("ffmpeg"),
		LibreOffice: r.Available("libreoffice"),
		Pdftoppm:    r.Available("pdftoppm"),
		Pdftotext:   r.Available("pdftotext"),
	}
}

// tail returns at most n trailing bytes of s. Used to bound the diagnostic
// output attached to external tool failures.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
