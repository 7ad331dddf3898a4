// Package api implements the HTTP layer of the converter service: upload,
// convert and health endpoints.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
)

// Router is the conversion engine the handlers dispatch to.
type Router interface {
	Route(ctx context.Context, sourcePath, destPath, filename, target string) error
}

// Server holds the handler dependencies.
type Server struct {
	router    Router
	uploadDir string
	outputDir string
	logger    *slog.Logger
}

// NewServer creates the API server and ensures the upload and output
// directories exist.
func NewServer(router Router, uploadDir, outputDir string, logger *slog.Logger) (*Server, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		router:    router,
		uploadDir: uploadDir,
		outputDir: outputDir,
		logger:    logger,
	}, nil
}

// Handler builds the route table wrapped with CORS.
func (s *Server) Handler(corsOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.HealthHandler)
	mux.HandleFunc("/upload", s.UploadHandler)
	mux.HandleFunc("/convert", s.ConvertHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(mux)
}

// Start runs the HTTP server on the given port.
func (s *Server) Start(port string, corsOrigins []string) error {
	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      s.Handler(corsOrigins),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 300 * time.Second, // allow for long-running conversions
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("starting file converter API server", "port", port)
	return httpServer.ListenAndServe()
}
