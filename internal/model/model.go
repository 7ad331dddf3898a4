// Package model contains data structures shared across the converter service.
package model

// Category is the coarse file-type grouping that drives catalog lookup and
// backend selection.
type Category string

// Supported file categories
const (
	CategoryImage        Category = "image"
	CategoryAudio        Category = "audio"
	CategoryVideo        Category = "video"
	CategorySpreadsheet  Category = "spreadsheet"
	CategoryDocument     Category = "document"
	CategoryPresentation Category = "presentation"
	CategoryPDF          Category = "pdf"
	CategoryUnknown      Category = "unknown"
)

// ConversionJob describes a single conversion. It is created by the router,
// handed to exactly one backend adapter, and discarded after the call returns.
type ConversionJob struct {
	// SourcePath is the uploaded file on disk
	SourcePath string

	// DestPath is where the converted file must end up
	DestPath string

	// Category is the detected category of the source file
	Category Category

	// Target is the normalized target extension (no dot, aliases resolved)
	Target string
}

// Capabilities records which optional external tools are installed. It is
// computed once at startup and treated as read-only for the lifetime of the
// process.
type Capabilities struct {
	// FFmpeg handles audio and video transcoding
	FFmpeg bool

	// LibreOffice handles document, presentation and spreadsheet-to-PDF
	// conversions
	LibreOffice bool

	// Pdftoppm (poppler) is the primary PDF-to-image rasterizer
	Pdftoppm bool

	// Pdftotext (poppler) extracts plain text from PDFs
	Pdftotext bool
}
