package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"html2md-mapper/internal/config"
	"html2md-mapper/internal/http"
	"html2md-mapper/internal/mapping"
	"html2md-mapper/internal/render"
	"html2md-mapper/internal/service"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Build the conversion core: fixed-config renderer + mapping engine
	renderer := render.NewMarkdownRenderer()
	engine := mapping.NewEngine(renderer)
	converterService := service.NewConverterService(engine)
	slog.Info("Converter initialized")

	// Create router with dependencies
	deps := &http.Deps{
		ConverterService: converterService,
		Engine:           engine,
		MaxBodyBytes:     cfg.MaxHTMLBytes,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "max_html_bytes", cfg.MaxHTMLBytes)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
