package converter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/Kodeworks/golang-image-ico"
	"github.com/chai2010/webp"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"

	"file-converter/internal/model"
	"file-converter/internal/util"
)

// jpegQuality is the fixed encoder setting for lossy image targets.
const jpegQuality = 95

// ImageAdapter converts between raster image formats in-process, without
// spawning any external tool.
type ImageAdapter struct{}

// NewImageAdapter creates a new image adapter.
func NewImageAdapter() *ImageAdapter {
	return &ImageAdapter{}
}

// Convert decodes the source image and re-encodes it as the job's target
// format. Targets that cannot represent transparency or palette indexing
// get the image flattened onto a white background first.
func (a *ImageAdapter) Convert(ctx context.Context, job model.ConversionJob) error {
	img, err := decodeImage(job.SourcePath)
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	out, err := os.Create(job.DestPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch job.Target {
	case "jpg":
		if util.NeedsFlatten(img) {
			img = util.Flatten(img)
		}
		return jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality})

	case "pdf":
		if util.NeedsFlatten(img) {
			img = util.Flatten(img)
		}
		return imageToPDF(img, out)

	case "png":
		return png.Encode(out, img)

	case "webp":
		return webp.Encode(out, img, &webp.Options{Quality: jpegQuality})

	case "tiff":
		return tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate})

	case "bmp":
		return bmp.Encode(out, img)

	case "gif":
		return gif.Encode(out, img, nil)

	case "ico":
		return ico.Encode(out, img)

	default:
		return fmt.Errorf("%w: image to .%s", ErrUnsupportedTarget, job.Target)
	}
}

// decodeImage loads an image file, picking the decoder from the file
// extension and falling back to content-based detection.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return png.Decode(f)
	case "jpg", "jpeg":
		return jpeg.Decode(f)
	case "gif":
		return gif.Decode(f)
	case "bmp":
		return bmp.Decode(f)
	case "webp":
		return xwebp.Decode(f)
	case "tiff", "tif":
		return tiff.Decode(f)
	default:
		img, _, err := image.Decode(f)
		return img, err
	}
}

// imageToPDF places the image centered on an A4 page, scaled to fit while
// preserving the aspect ratio, and writes the PDF to w.
func imageToPDF(img image.Image, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// gofpdf reads image data from a registered reader; PNG round-trips
	// every image type we decode without loss.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("preparing image for PDF: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("source", opts, &buf)

	imageWidth := float64(img.Bounds().Dx())
	imageHeight := float64(img.Bounds().Dy())
	pageWidth, pageHeight := pdf.GetPageSize()

	// Allow for margins
	pageWidth -= 20
	pageHeight -= 20

	// Scale to fit the page while keeping the aspect ratio
	scale := math.Min(pageWidth/imageWidth, pageHeight/imageHeight)
	width := imageWidth * scale
	height := imageHeight * scale

	// Center on the page
	x := (pageWidth-width)/2 + 10
	y := (pageHeight-height)/2 + 10

	pdf.ImageOptions("source", x, y, width, height, false, opts, 0, "")
	return pdf.Output(w)
}
