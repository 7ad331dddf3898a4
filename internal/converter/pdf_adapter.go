package converter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"

	"file-converter/internal/model"
	"file-converter/internal/util"
)

// Encoder settings for rendered PDF pages.
const (
	pdfJpegQuality = 92
	pdfWebpQuality = 90
	popplerDPI     = "150"
)

// PageRenderer rasterizes the first page of a PDF document in-process. It
// is the secondary backend of the fallback chain and the only backend for
// webp. A nil renderer means the capability is absent.
type PageRenderer interface {
	RenderFirstPage(path string) (image.Image, error)
}

// PDFAdapter converts PDFs to images or plain text. Image targets go
// through a fallback chain: pdftoppm first, then the in-process page
// renderer. A later backend is only tried when the one before it is
// unavailable or fails, never as a routine alternative.
type PDFAdapter struct {
	runner   Runner
	renderer PageRenderer
	caps     model.Capabilities
	timeout  time.Duration
}

// NewPDFAdapter creates a PDF adapter. renderer may be nil when no
// in-process rasterizer is available.
func NewPDFAdapter(runner Runner, renderer PageRenderer, caps model.Capabilities, timeout time.Duration) *PDFAdapter {
	return &PDFAdapter{runner: runner, renderer: renderer, caps: caps, timeout: timeout}
}

// chainOutcome is the tri-state result of one fallback-chain backend.
type chainOutcome int

const (
	outcomeRendered chainOutcome = iota
	outcomeUnavailable
	outcomeFailed
)

// renderBackend is one candidate strategy in the fallback chain.
type renderBackend struct {
	name   string
	render func(ctx context.Context, job model.ConversionJob) (chainOutcome, error)
}

// Convert dispatches on the normalized target.
func (a *PDFAdapter) Convert(ctx context.Context, job model.ConversionJob) error {
	switch job.Target {
	case "png", "jpg":
		return a.convertToImage(ctx, job)
	case "webp":
		return a.convertToWebp(job)
	case "txt":
		return a.convertToText(ctx, job)
	default:
		return fmt.Errorf("%w: pdf to .%s", ErrUnsupportedPdfTarget, job.Target)
	}
}

// convertToImage walks the fallback chain. A backend's failure is swallowed
// and turned into "try the next one"; only when the chain is exhausted does
// a single aggregate failure naming every attempted backend come back. An
// empty document is the one terminal condition that aborts the chain.
func (a *PDFAdapter) convertToImage(ctx context.Context, job model.ConversionJob) error {
	chain := []renderBackend{
		{name: "pdftoppm (poppler)", render: a.renderWithPoppler},
		{name: "built-in page renderer", render: a.renderWithBuiltin},
	}

	tried := make([]string, 0, len(chain))
	for _, backend := range chain {
		outcome, err := backend.render(ctx, job)
		if outcome == outcomeRendered {
			return nil
		}
		if err != nil && errors.Is(err, ErrEmptyDocument) {
			return err
		}
		tried = append(tried, backend.name)
	}

	return fmt.Errorf("%w: no PDF-to-image backend available, install poppler (pdftoppm) or enable the built-in page renderer (tried: %s)",
		ErrPdfBackendExhausted, strings.Join(tried, ", "))
}

// renderWithPoppler rasterizes the first page with pdftoppm at a fixed
// resolution. pdftoppm picks its own output filename from the prefix it is
// given, and may spell jpg as "jpeg", so the produced file is located among
// the candidate names and moved into place.
func (a *PDFAdapter) renderWithPoppler(ctx context.Context, job model.ConversionJob) (chainOutcome, error) {
	if !a.caps.Pdftoppm {
		return outcomeUnavailable, nil
	}

	popplerTarget := job.Target
	if popplerTarget == "jpg" {
		popplerTarget = "jpeg"
	}

	outDir := filepath.Dir(job.DestPath)
	prefix := filepath.Join(outDir, stem(job.DestPath))
	args := []string{"-r", popplerDPI, "-singlefile", "-" + popplerTarget, job.SourcePath, prefix}

	if _, err := a.runner.Run(ctx, "pdftoppm", args, "", a.timeout); err != nil {
		if errors.Is(err, ErrBackendUnavailable) {
			return outcomeUnavailable, nil
		}
		return outcomeFailed, nil
	}

	candidates := []string{stem(job.DestPath) + "." + job.Target}
	if job.Target == "jpg" {
		candidates = append(candidates, stem(job.DestPath)+".jpeg")
	}
	found, err := locateOutput(outDir, candidates, job.DestPath)
	if err != nil || !found {
		return outcomeFailed, nil
	}
	return outcomeRendered, nil
}

// renderWithBuiltin rasterizes the first page in-process and encodes it.
func (a *PDFAdapter) renderWithBuiltin(_ context.Context, job model.ConversionJob) (chainOutcome, error) {
	if a.renderer == nil {
		return outcomeUnavailable, nil
	}

	img, err := a.renderer.RenderFirstPage(job.SourcePath)
	if err != nil {
		if errors.Is(err, ErrEmptyDocument) {
			return outcomeFailed, err
		}
		return outcomeFailed, nil
	}

	if err := encodePage(img, job.DestPath, job.Target); err != nil {
		return outcomeFailed, nil
	}
	return outcomeRendered, nil
}

// convertToWebp renders with the in-process renderer only; no other backend
// can produce webp, so there is no chain to fall through.
func (a *PDFAdapter) convertToWebp(job model.ConversionJob) error {
	if a.renderer == nil {
		return fmt.Errorf("%w: pdf to webp requires the built-in page renderer", ErrBackendUnavailable)
	}

	img, err := a.renderer.RenderFirstPage(job.SourcePath)
	if err != nil {
		return err
	}
	return encodePage(img, job.DestPath, "webp")
}

// convertToText extracts the document text with pdftotext. Diagnostic
// output is attached to failures unmodified.
func (a *PDFAdapter) convertToText(ctx context.Context, job model.ConversionJob) error {
	stderr, err := a.runner.Run(ctx, "pdftotext", []string{job.SourcePath, job.DestPath}, "", a.timeout)
	if err != nil {
		if errors.Is(err, ErrExternalTool) {
			return fmt.Errorf("%w: %s", err, stderr)
		}
		return err
	}
	return nil
}

// encodePage writes a rendered page image to dst in the given format,
// flattening transparency for targets that cannot carry it.
func encodePage(img image.Image, dst, target string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	switch target {
	case "png":
		return png.Encode(out, img)
	case "jpg":
		if util.NeedsFlatten(img) {
			img = util.Flatten(img)
		}
		return jpeg.Encode(out, img, &jpeg.Options{Quality: pdfJpegQuality})
	case "webp":
		return webp.Encode(out, img, &webp.Options{Quality: pdfWebpQuality})
	default:
		return fmt.Errorf("%w: pdf page to .%s", ErrUnsupportedPdfTarget, target)
	}
}
