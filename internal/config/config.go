// Package config loads service configuration from the environment, an
// optional .env file, and an optional YAML file for tool path and timeout
// overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration for the converter service.
type Config struct {
	Port      string
	UploadDir string
	OutputDir string

	// CORSOrigins are the origins allowed to call the API
	CORSOrigins []string

	// ToolPaths overrides the executable path per external tool name
	ToolPaths map[string]string

	// External tool time budgets
	MediaTimeout   time.Duration
	OfficeTimeout  time.Duration
	PdfToolTimeout time.Duration
}

// fileConfig is the YAML shape of the optional CONFIG_FILE.
type fileConfig struct {
	Tools    map[string]string `yaml:"tools"`
	Timeouts struct {
		MediaSeconds   int `yaml:"media_seconds"`
		OfficeSeconds  int `yaml:"office_seconds"`
		PdfToolSeconds int `yaml:"pdf_tool_seconds"`
	} `yaml:"timeouts"`
}

// Load reads configuration from the environment. A .env file is applied
// first when present; a YAML file named by CONFIG_FILE is applied last.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is a valid config.
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		OutputDir: getEnv("OUTPUT_DIR", "outputs"),
		CORSOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"http://localhost:8000,http://127.0.0.1:8000,http://localhost:5173,http://127.0.0.1:5173")),
		ToolPaths:      make(map[string]string),
		MediaTimeout:   300 * time.Second,
		OfficeTimeout:  120 * time.Second,
		PdfToolTimeout: 60 * time.Second,
	}

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		if err := cfg.applyFile(file); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	for tool, toolPath := range fc.Tools {
		c.ToolPaths[tool] = toolPath
	}
	if fc.Timeouts.MediaSeconds > 0 {
		c.MediaTimeout = time.Duration(fc.Timeouts.MediaSeconds) * time.Second
	}
	if fc.Timeouts.OfficeSeconds > 0 {
		c.OfficeTimeout = time.Duration(fc.Timeouts.OfficeSeconds) * time.Second
	}
	if fc.Timeouts.PdfToolSeconds > 0 {
		c.PdfToolTimeout = time.Duration(fc.Timeouts.PdfToolSeconds) * time.Second
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
