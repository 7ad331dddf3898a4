// Package catalog holds the static format catalog: which target formats are
// valid for each file category, extension aliases, and the tables used to
// classify an uploaded file from its name and MIME type.
package catalog

import (
	"path/filepath"
	"strings"

	"file-converter/internal/model"
)

// formatMap lists the valid target extensions per category. Order is the
// suggestion display order, not a preference ranking.
var formatMap = map[model.Category][]string{
	model.CategoryImage:        {"png", "jpg", "jpeg", "webp", "pdf", "tiff", "tif", "bmp", "gif", "ico"},
	model.CategoryAudio:        {"mp3", "wav", "ogg", "flac", "aac", "m4a"},
	model.CategoryVideo:        {"mp4", "webm", "gif", "avi", "mov", "mkv"},
	model.CategorySpreadsheet:  {"csv", "xlsx", "xls", "pdf"},
	model.CategoryDocument:     {"pdf", "txt", "odt", "docx", "html", "rtf"},
	model.CategoryPresentation: {"pdf", "pptx", "odp"},
	model.CategoryPDF:          {"png", "jpg", "jpeg", "webp", "txt"},
}

// extAliases maps non-canonical extension spellings to their canonical form.
var extAliases = map[string]string{
	"jpeg": "jpg",
	"tif":  "tiff",
}

// extToCategory classifies a file by its extension. Extension always wins
// over any MIME hint.
var extToCategory = map[string]model.Category{
	"jpg": model.CategoryImage, "jpeg": model.CategoryImage, "png": model.CategoryImage,
	"gif": model.CategoryImage, "webp": model.CategoryImage, "tiff": model.CategoryImage,
	"tif": model.CategoryImage, "bmp": model.CategoryImage,

	"mp3": model.CategoryAudio, "wav": model.CategoryAudio, "ogg": model.CategoryAudio,
	"flac": model.CategoryAudio, "aac": model.CategoryAudio, "m4a": model.CategoryAudio,
	"wma": model.CategoryAudio,

	"mp4": model.CategoryVideo, "webm": model.CategoryVideo, "avi": model.CategoryVideo,
	"mov": model.CategoryVideo, "mkv": model.CategoryVideo, "wmv": model.CategoryVideo,
	"flv": model.CategoryVideo,

	"csv": model.CategorySpreadsheet, "xlsx": model.CategorySpreadsheet, "xls": model.CategorySpreadsheet,

	"docx": model.CategoryDocument, "doc": model.CategoryDocument, "txt": model.CategoryDocument,
	"odt": model.CategoryDocument,

	"pptx": model.CategoryPresentation, "ppt": model.CategoryPresentation, "odp": model.CategoryPresentation,

	"pdf": model.CategoryPDF,
}

// mimeToCategory classifies a file by an exact MIME type when the extension
// is unknown. The image/, audio/ and video/ prefixes are handled separately
// in Classify and take precedence over this table.
var mimeToCategory = map[string]model.Category{
	"application/pdf": model.CategoryPDF,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": model.CategorySpreadsheet,
	"application/vnd.ms-excel": model.CategorySpreadsheet,
	"text/csv":                 model.CategorySpreadsheet,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": model.CategoryDocument,
	"application/msword": model.CategoryDocument,
	"text/plain":         model.CategoryDocument,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": model.CategoryPresentation,
	"application/vnd.ms-powerpoint": model.CategoryPresentation,
}

// Normalize lower-cases an extension, strips any leading dots, and resolves
// aliases to their canonical spelling. Normalize is idempotent.
func Normalize(ext string) string {
	clean := strings.TrimLeft(strings.ToLower(ext), ".")
	if canonical, ok := extAliases[clean]; ok {
		return canonical
	}
	return clean
}

// Classify determines the category of a file from its name and an optional
// MIME hint. A recognized extension takes absolute precedence over the hint.
// Files that match nothing are CategoryUnknown; no error is ever returned
// because "unknown" is itself a valid, terminal classification.
func Classify(filename, mimeHint string) model.Category {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if category, ok := extToCategory[ext]; ok {
		return category
	}

	if mimeHint != "" {
		switch {
		case strings.HasPrefix(mimeHint, "image/"):
			return model.CategoryImage
		case strings.HasPrefix(mimeHint, "audio/"):
			return model.CategoryAudio
		case strings.HasPrefix(mimeHint, "video/"):
			return model.CategoryVideo
		}
		if category, ok := mimeToCategory[mimeHint]; ok {
			return category
		}
	}

	return model.CategoryUnknown
}

// Suggestions returns the valid conversion targets for a category, excluding
// the input's own format. Catalog order is preserved. Unknown categories get
// an empty list.
func Suggestions(category model.Category, inputExt string) []string {
	row := formatMap[category]
	input := Normalize(inputExt)

	suggestions := make([]string, 0, len(row))
	for _, target := range row {
		if Normalize(target) != input {
			suggestions = append(suggestions, target)
		}
	}
	return suggestions
}

// IsValidTarget reports whether the normalized target is a valid conversion
// target for the category. Unlike Suggestions, the input's own format is not
// excluded: explicitly re-requesting it is allowed.
func IsValidTarget(category model.Category, target string) bool {
	normalized := Normalize(target)
	for _, valid := range formatMap[category] {
		if Normalize(valid) == normalized {
			return true
		}
	}
	return false
}
