package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"file-converter/internal/catalog"
	"file-converter/internal/converter"
)

// Upload limits
const (
	maxUploadBytes = 100 << 20 // 100MB
	maxFormMemory  = 10 << 20  // larger files spill to disk
)

// HealthHandler reports liveness.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`))
}

// UploadHandler stores an uploaded file under a fresh asset id, classifies
// it and returns the suggested conversion targets.
func (s *Server) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		s.respondError(w, http.StatusBadRequest, "parsing upload form", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "reading uploaded file", err)
		return
	}
	defer file.Close()

	fileID := uuid.NewString()
	ext := filepath.Ext(header.Filename)
	savePath := filepath.Join(s.uploadDir, fileID+ext)

	saved, err := os.Create(savePath)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "storing upload", err)
		return
	}
	if _, err := io.Copy(saved, file); err != nil {
		saved.Close()
		s.respondError(w, http.StatusInternalServerError, "storing upload", err)
		return
	}
	saved.Close()

	mimeType := s.sniffMime(savePath, header.Header.Get("Content-Type"), header.Filename)
	category := catalog.Classify(header.Filename, mimeType)
	suggestions := catalog.Suggestions(category, strings.TrimPrefix(ext, "."))

	s.logger.Info("file uploaded",
		"file_id", fileID,
		"filename", header.Filename,
		"category", category,
		"mime", mimeType,
	)

	s.respondJSON(w, http.StatusOK, UploadResponse{
		FileID:      fileID,
		Filename:    header.Filename,
		Category:    string(category),
		MimeType:    mimeType,
		Suggestions: suggestions,
	})
}

// ConvertHandler converts a previously uploaded asset and streams the
// result back as an attachment.
func (s *Server) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "decoding request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request", err)
		return
	}

	inputPath := filepath.Join(s.uploadDir, req.FileID+filepath.Ext(req.Filename))
	if _, err := os.Stat(inputPath); err != nil {
		s.respondError(w, http.StatusNotFound, "upload not found", nil)
		return
	}

	// The output filename keeps the requested spelling even when an alias
	// normalizes differently for conversion. Only the final path component
	// of the caller's filename is used; directory segments would let the
	// destination escape the output directory.
	rawTarget := strings.TrimLeft(strings.ToLower(req.TargetFormat), ".")
	baseName := filepath.Base(req.Filename)
	outputFilename := strings.TrimSuffix(baseName, filepath.Ext(baseName)) + "." + rawTarget
	outputPath := filepath.Join(s.outputDir, req.FileID+"_"+outputFilename)

	if err := s.router.Route(r.Context(), inputPath, outputPath, req.Filename, req.TargetFormat); err != nil {
		status := http.StatusInternalServerError
		if isRequestError(err) {
			status = http.StatusBadRequest
		}
		s.logger.Error("conversion failed",
			"file_id", req.FileID,
			"target", rawTarget,
			"error", err,
		)
		s.respondError(w, status, "conversion failed", err)
		return
	}

	s.logger.Info("conversion succeeded", "file_id", req.FileID, "target", rawTarget)

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outputFilename))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, outputPath)
}

// isRequestError reports whether the failure was caused by the request
// itself rather than a backend.
func isRequestError(err error) bool {
	return errors.Is(err, converter.ErrUnsupportedTarget) ||
		errors.Is(err, converter.ErrUnsupportedCategory) ||
		errors.Is(err, converter.ErrUnsupportedSpreadsheetTarget) ||
		errors.Is(err, converter.ErrUnsupportedPdfTarget)
}

// sniffMime detects the MIME type from the stored file's leading bytes,
// with the declared type and filename as fallbacks.
func (s *Server) sniffMime(path, declared, filename string) string {
	head := make([]byte, 512)
	f, err := os.Open(path)
	if err != nil {
		return catalog.DetectMime(nil, declared, filename)
	}
	defer f.Close()

	n, _ := io.ReadFull(f, head)
	return catalog.DetectMime(head[:n], declared, filename)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	s.respondJSON(w, status, errorResponse{Error: message})
}
