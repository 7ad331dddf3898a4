package converter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"file-converter/internal/model"
)

// stderrLimit bounds the diagnostic output attached to external tool
// failures so error payloads stay small.
const stderrLimit = 500

// MediaAdapter converts audio and video files by delegating to ffmpeg.
// The destination extension alone determines the output container and
// codec; no explicit codec flags are passed.
type MediaAdapter struct {
	runner  Runner
	timeout time.Duration
}

// NewMediaAdapter creates a media adapter that shells out through runner.
func NewMediaAdapter(runner Runner, timeout time.Duration) *MediaAdapter {
	return &MediaAdapter{runner: runner, timeout: timeout}
}

// Convert transcodes the source into the destination format.
func (a *MediaAdapter) Convert(ctx context.Context, job model.ConversionJob) error {
	args := []string{"-y", "-i", job.SourcePath, job.DestPath}

	stderr, err := a.runner.Run(ctx, "ffmpeg", args, "", a.timeout)
	if err != nil {
		if errors.Is(err, ErrExternalTool) {
			return fmt.Errorf("%w: %s", err, tail(stderr, stderrLimit))
		}
		return err
	}
	return nil
}
