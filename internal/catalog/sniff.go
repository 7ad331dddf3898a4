package catalog

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// DetectMime determines the MIME type of an uploaded file. Content sniffing
// on the first bytes wins; when it yields nothing useful the declared type
// from the upload is used, and finally the filename extension. Returns ""
// when nothing matched.
func DetectMime(head []byte, declared, filename string) string {
	// DetectContentType reports empty input as text/plain, so only sniff
	// when there are bytes to look at.
	if len(head) > 0 {
		detected := stripParams(http.DetectContentType(head))
		if detected != "" && detected != "application/octet-stream" {
			return detected
		}
	}

	if declared = stripParams(declared); declared != "" && declared != "application/octet-stream" {
		return declared
	}

	if guessed := mime.TypeByExtension(filepath.Ext(filename)); guessed != "" {
		return stripParams(guessed)
	}
	return ""
}

// stripParams removes MIME parameters such as "; charset=utf-8" so the
// result can be looked up in mimeToCategory.
func stripParams(mimeType string) string {
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.TrimSpace(mimeType)
}
