package config

import (
	"fmt"
	"net/http"

	"content-analyzer/internal/domain"
	"content-analyzer/internal/handler"
	"content-analyzer/internal/service"
	"content-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	UploadStore     *service.TempUploadStore
	AnalysisService *service.AnalysisService
	AnalyzeHandler  *handler.AnalyzeHandler
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the application around cfg
func NewContainerWithConfig(cfg domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	uploadStore, err := service.NewTempUploadStore(cfg.GetUploadPath(), cfg.GetMaxFileSize(), appLogger)
	if err != nil {
		return nil, err
	}

	pageSource, err := service.NewPDFPageSource(cfg.GetPDFEngine())
	if err != nil {
		return nil, fmt.Errorf("configure PDF extractor: %w", err)
	}
	pdfExtractor := service.NewPDFExtractor(pageSource, appLogger)
	ocrExtractor := service.NewOCRExtractor(cfg.GetOCRLanguage(), appLogger)

	analysisService := service.NewAnalysisService(pdfExtractor, ocrExtractor, cfg.GetExtractTimeout(), appLogger)
	analyzeHandler := handler.NewAnalyzeHandler(uploadStore, analysisService, cfg.GetMaxFileSize(), appLogger)

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		UploadStore:     uploadStore,
		AnalysisService: analysisService,
		AnalyzeHandler:  analyzeHandler,
	}, nil
}

// Router builds the HTTP handler for the container's configuration
func (c *Container) Router() http.Handler {
	return handler.NewRouter(c.AnalyzeHandler, c.Logger, handler.RouterOptions{
		AllowedOrigins: c.Config.GetAllowedOrigins(),
		FrontendDir:    c.Config.GetFrontendDir(),
	})
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
