package converter

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// renderDPI rasterizes at twice the PDF's native 72 DPI.
const renderDPI = 144

// fitzRenderer renders PDF pages in-process through MuPDF.
type fitzRenderer struct{}

// NewPageRenderer creates the in-process page renderer.
func NewPageRenderer() PageRenderer {
	return &fitzRenderer{}
}

// RenderFirstPage opens the document, verifies it has at least one page and
// rasterizes the first one. The document handle is released on every path.
func (*fitzRenderer) RenderFirstPage(path string) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, ErrEmptyDocument
	}

	img, err := doc.ImageDPI(0, renderDPI)
	if err != nil {
		return nil, fmt.Errorf("rendering pdf page: %w", err)
	}
	return img, nil
}
