// Package converter routes conversion jobs to backend adapters and
// implements the adapters themselves, both in-process and external-tool
// based.
package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"file-converter/internal/catalog"
	"file-converter/internal/model"
)

// Adapter is the contract every conversion backend implements: convert the
// job's source file into its destination file, or return a typed failure.
// Adapters never re-validate the target; the router already did.
type Adapter interface {
	Convert(ctx context.Context, job model.ConversionJob) error
}

// Options carries the per-backend time budgets for external tools.
type Options struct {
	MediaTimeout   time.Duration // ffmpeg
	OfficeTimeout  time.Duration // libreoffice
	PdfToolTimeout time.Duration // pdftoppm and pdftotext
}

func (o *Options) fillDefaults() {
	if o.MediaTimeout == 0 {
		o.MediaTimeout = 300 * time.Second
	}
	if o.OfficeTimeout == 0 {
		o.OfficeTimeout = 120 * time.Second
	}
	if o.PdfToolTimeout == 0 {
		o.PdfToolTimeout = 60 * time.Second
	}
}

// Router validates a requested conversion against the catalog and
// dispatches it to exactly one backend adapter.
type Router struct {
	adapters map[model.Category]Adapter
}

// NewRouter wires up the default adapter set. renderer may be nil when no
// in-process PDF rasterizer is available.
func NewRouter(caps model.Capabilities, runner Runner, renderer PageRenderer, opts Options) *Router {
	opts.fillDefaults()

	media := NewMediaAdapter(runner, opts.MediaTimeout)
	office := NewOfficeAdapter(runner, opts.OfficeTimeout)

	return &Router{adapters: map[model.Category]Adapter{
		model.CategoryImage:        NewImageAdapter(),
		model.CategoryAudio:        media,
		model.CategoryVideo:        media,
		model.CategorySpreadsheet:  NewSpreadsheetAdapter(office),
		model.CategoryDocument:     office,
		model.CategoryPresentation: office,
		model.CategoryPDF:          NewPDFAdapter(runner, renderer, caps, opts.PdfToolTimeout),
	}}
}

// Route classifies the source by its original filename and converts it.
func (r *Router) Route(ctx context.Context, sourcePath, destPath, filename, target string) error {
	return r.RouteAs(ctx, catalog.Classify(filename, ""), sourcePath, destPath, target)
}

// RouteAs converts a source whose category is already known. The requested
// target is normalized and checked against the catalog before any backend
// runs; after a backend reports success the destination file must exist,
// whatever the backend claimed.
func (r *Router) RouteAs(ctx context.Context, category model.Category, sourcePath, destPath, target string) error {
	raw := strings.TrimLeft(strings.ToLower(target), ".")
	normalized := catalog.Normalize(raw)

	if !catalog.IsValidTarget(category, normalized) {
		return fmt.Errorf("%w: .%s for %s files", ErrUnsupportedTarget, raw, category)
	}

	adapter, ok := r.adapters[category]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedCategory, category)
	}

	job := model.ConversionJob{
		SourcePath: sourcePath,
		DestPath:   destPath,
		Category:   category,
		Target:     normalized,
	}

	if err := adapter.Convert(ctx, job); err != nil {
		return fmt.Errorf("converting %s to .%s: %w", category, normalized, err)
	}

	if _, err := os.Stat(destPath); err != nil {
		return fmt.Errorf("%w: expected %s", ErrNoOutput, filepath.Base(destPath))
	}
	return nil
}
