package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"content-analyzer/internal/domain"
)

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8083
	DefaultPortAttempts   = 10
	DefaultMaxFileSize    = 15 * 1024 * 1024
	DefaultOCRLanguage    = "eng"
	DefaultPDFEngine      = "native"
	DefaultExtractTimeout = 60 * time.Second
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	Host           string
	Port           int
	PortAttempts   int
	UploadPath     string
	MaxFileSize    int64
	LogLevel       string
	OCRLanguage    string
	PDFEngine      string
	ExtractTimeout time.Duration
	AllowedOrigins []string
	FrontendDir    string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		Host:           getEnvOrDefault("HOST", DefaultHost),
		Port:           getEnvIntOrDefault("PORT", DefaultPort),
		PortAttempts:   getEnvIntOrDefault("PORT_ATTEMPTS", DefaultPortAttempts),
		UploadPath:     getEnvOrDefault("UPLOAD_PATH", filepath.Join(os.TempDir(), "content-analyzer-uploads")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", DefaultMaxFileSize),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		OCRLanguage:    getEnvOrDefault("OCR_LANGUAGE", DefaultOCRLanguage),
		PDFEngine:      strings.ToLower(getEnvOrDefault("PDF_ENGINE", DefaultPDFEngine)),
		ExtractTimeout: getEnvDurationOrDefault("EXTRACT_TIMEOUT", DefaultExtractTimeout),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		FrontendDir:    getEnvOrDefault("FRONTEND_DIR", ""),
	}
}

// GetHost returns the listening host
func (c *AppConfig) GetHost() string {
	return c.Host
}

// GetPort returns the preferred listening port
func (c *AppConfig) GetPort() int {
	return c.Port
}

// GetPortAttempts returns how many consecutive ports the bootstrap may try
func (c *AppConfig) GetPortAttempts() int {
	return c.PortAttempts
}

// GetUploadPath returns the transient upload directory
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

func (c *AppConfig) GetOCRLanguage() string {
	return c.OCRLanguage
}

// GetPDFEngine returns "native" or "mupdf"
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetExtractTimeout bounds a single extraction call; zero disables the bound
func (c *AppConfig) GetExtractTimeout() time.Duration {
	return c.ExtractTimeout
}

func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetFrontendDir returns the static frontend directory, empty when disabled
func (c *AppConfig) GetFrontendDir() string {
	return c.FrontendDir
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
