package converter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"file-converter/internal/model"
)

// officeFormatIDs maps public target extensions to libreoffice's own
// convert-to identifiers. They are mostly but not always the same string,
// so the table is kept explicit; unlisted targets pass through unchanged.
var officeFormatIDs = map[string]string{
	"pdf":  "pdf",
	"txt":  "txt",
	"odt":  "odt",
	"docx": "docx",
	"html": "html",
	"odp":  "odp",
	"pptx": "pptx",
	"csv":  "csv",
	"xlsx": "xlsx",
}

// OfficeAdapter converts documents and presentations by running libreoffice
// headless. The spreadsheet adapter also delegates its PDF target here.
type OfficeAdapter struct {
	runner  Runner
	timeout time.Duration
}

// NewOfficeAdapter creates an office adapter that shells out through runner.
func NewOfficeAdapter(runner Runner, timeout time.Duration) *OfficeAdapter {
	return &OfficeAdapter{runner: runner, timeout: timeout}
}

// Convert runs libreoffice against the source file. libreoffice writes into
// the destination's directory but names the output after the source's stem,
// so the produced file is located and renamed into place afterward.
func (a *OfficeAdapter) Convert(ctx context.Context, job model.ConversionJob) error {
	loFormat, ok := officeFormatIDs[job.Target]
	if !ok {
		loFormat = job.Target
	}
	outDir := filepath.Dir(job.DestPath)

	args := []string{"--headless", "--convert-to", loFormat, "--outdir", outDir, job.SourcePath}
	stderr, err := a.runner.Run(ctx, "libreoffice", args, "", a.timeout)
	if err != nil {
		if errors.Is(err, ErrExternalTool) {
			return fmt.Errorf("%w: %s", err, tail(stderr, stderrLimit))
		}
		return err
	}

	produced := stem(job.SourcePath) + "." + loFormat
	if _, err := locateOutput(outDir, []string{produced}, job.DestPath); err != nil {
		return fmt.Errorf("moving libreoffice output: %w", err)
	}
	return nil
}
