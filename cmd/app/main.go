// Package main provides the entry point for the file converter service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"file-converter/internal/api"
	"file-converter/internal/catalog"
	"file-converter/internal/config"
	"file-converter/internal/converter"
	"file-converter/internal/model"
)

func main() {
	runMode := flag.String("mode", "api", "Run mode: 'api' or 'cli'")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	runner := converter.NewRunner(cfg.ToolPaths)
	caps := converter.DetectCapabilities(runner)
	logger.Info("detected conversion backends",
		"ffmpeg", caps.FFmpeg,
		"libreoffice", caps.LibreOffice,
		"pdftoppm", caps.Pdftoppm,
		"pdftotext", caps.Pdftotext,
	)

	router := converter.NewRouter(caps, runner, converter.NewPageRenderer(), converter.Options{
		MediaTimeout:   cfg.MediaTimeout,
		OfficeTimeout:  cfg.OfficeTimeout,
		PdfToolTimeout: cfg.PdfToolTimeout,
	})

	if *runMode == "api" {
		server, err := api.NewServer(router, cfg.UploadDir, cfg.OutputDir, logger)
		if err != nil {
			logger.Error("initializing server", "error", err)
			os.Exit(1)
		}
		if err := server.Start(cfg.Port, cfg.CORSOrigins); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	// CLI mode: convert a single local file.
	args := flag.Args()
	if len(args) < 2 {
		fmt.Println("Usage: app -mode cli <file_path> <target_format>")
		printSupportedCategories()
		os.Exit(2)
	}
	if err := convertFile(router, args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// convertFile converts a local file, writing the result next to the source.
func convertFile(router *converter.Router, path, target string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	category := catalog.Classify(filepath.Base(path), "")
	if category == model.CategoryUnknown {
		return fmt.Errorf("cannot determine the file type of %s", path)
	}

	target = strings.TrimLeft(strings.ToLower(target), ".")
	base := strings.TrimSuffix(path, filepath.Ext(path))
	outputPath := base + "." + target

	fmt.Printf("Converting %s to %s...\n", path, outputPath)
	if err := router.Route(context.Background(), path, outputPath, filepath.Base(path), target); err != nil {
		return err
	}
	fmt.Println("Conversion completed successfully!")
	return nil
}

// printSupportedCategories lists the catalog rows for the CLI help text.
func printSupportedCategories() {
	fmt.Println("\nSupported conversions:")
	categories := []model.Category{
		model.CategoryImage, model.CategoryAudio, model.CategoryVideo,
		model.CategorySpreadsheet, model.CategoryDocument,
		model.CategoryPresentation, model.CategoryPDF,
	}
	for _, c := range categories {
		fmt.Printf("- %-12s -> %s\n", c, strings.Join(catalog.Suggestions(c, ""), ", "))
	}
}
