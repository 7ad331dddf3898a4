package converter

import "errors"

var (
	// ErrUnsupportedCategory is returned when no backend handles the
	// detected file category.
	ErrUnsupportedCategory = errors.New("convert: unsupported file category")

	// ErrUnsupportedTarget is returned when the requested target format is
	// not in the catalog for the detected category.
	ErrUnsupportedTarget = errors.New("convert: unsupported target format")

	// ErrBackendUnavailable is returned when an optional dependency needed
	// for the chosen conversion path is not installed.
	ErrBackendUnavailable = errors.New("convert: conversion backend unavailable")

	// ErrExternalTool is returned when an external converter exits non-zero.
	ErrExternalTool = errors.New("convert: external tool failed")

	// ErrExternalToolTimeout is returned when an external converter exceeds
	// its time budget.
	ErrExternalToolTimeout = errors.New("convert: external tool timed out")

	// ErrNoOutput is returned when a backend reports success but the
	// destination file does not exist afterward.
	ErrNoOutput = errors.New("convert: conversion produced no output file")

	// ErrEmptyDocument is returned for a PDF with zero pages.
	ErrEmptyDocument = errors.New("convert: document has no pages")

	// ErrPdfBackendExhausted is returned when every backend in the
	// PDF-to-image fallback chain failed or was unavailable.
	ErrPdfBackendExhausted = errors.New("convert: all PDF rendering backends failed")

	// ErrUnsupportedSpreadsheetTarget is returned for spreadsheet targets
	// outside csv, xlsx and pdf.
	ErrUnsupportedSpreadsheetTarget = errors.New("convert: unsupported spreadsheet target")

	// ErrUnsupportedPdfTarget is returned for PDF targets outside the
	// image and text formats.
	ErrUnsupportedPdfTarget = errors.New("convert: unsupported PDF target")
)
