package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_converter_service.go -package=mocks -mock_names=ConverterService=MockConverterService html2md-mapper/internal/service ConverterService

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"html2md-mapper/internal/contextutil"
	"html2md-mapper/internal/mapping"
)

// MappingEngine is the conversion core as seen from the service layer
// (consumer-first interface).
type MappingEngine interface {
	// ConvertWithMapping converts HTML to Markdown with per-element line
	// mappings. Expected failures are reported inside the Result, never as a
	// panic.
	ConvertWithMapping(htmlText string) mapping.Result
}

// ConvertRequest represents a conversion request in the domain layer.
type ConvertRequest struct {
	HTMLText string `validate:"required"`
}

// ConvertResponse carries the full conversion result.
type ConvertResponse struct {
	Result mapping.Result
}

// FindByLineResponse carries a line lookup result. Found is false when no
// mapping covers the requested line.
type FindByLineResponse struct {
	Mapping mapping.Mapping
	Found   bool
}

// ConverterService provides HTML→Markdown conversion with line mapping.
type ConverterService interface {
	// ConvertHTML converts the given HTML text and retains the resulting
	// mapping list for subsequent FindByLine calls.
	ConvertHTML(ctx context.Context, req ConvertRequest) (ConvertResponse, error)
	// FindByLine looks up the retained mapping list for the record covering
	// the given 1-based Markdown line.
	FindByLine(ctx context.Context, lineNumber int) (FindByLineResponse, error)
}

// converterService implements ConverterService. The engine itself is pure;
// the only state here is the last successful conversion's mapping list, which
// FindByLine reads. A mutex serializes access so one shared instance can
// serve concurrent HTTP callers.
type converterService struct {
	engine MappingEngine

	mu           sync.Mutex
	lastMappings []mapping.Mapping
}

// NewConverterService creates a new ConverterService.
func NewConverterService(engine MappingEngine) ConverterService {
	return &converterService{
		engine: engine,
	}
}

// ConvertHTML converts HTML text to Markdown with mappings.
func (s *converterService) ConvertHTML(ctx context.Context, req ConvertRequest) (ConvertResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Business validation; the engine is never handed empty input.
	if strings.TrimSpace(req.HTMLText) == "" {
		logger.WarnContext(ctx, "empty html text in convert request")
		return ConvertResponse{}, &ValidationError{
			Field:   "html_text",
			Message: "cannot be empty",
		}
	}

	result := s.engine.ConvertWithMapping(req.HTMLText)

	if result.Status != mapping.StatusConverted {
		// A failed conversion keeps the previously retained list intact.
		logger.WarnContext(ctx, "conversion failed", "error", result.Error)
		return ConvertResponse{}, fmt.Errorf("%w: %s", ErrConversionFailed, result.Error)
	}

	s.mu.Lock()
	s.lastMappings = result.Mappings
	s.mu.Unlock()
	logger.InfoContext(ctx, "html converted",
		"html_length", result.OriginalHTMLLength,
		"mappings", len(result.Mappings))

	return ConvertResponse{Result: result}, nil
}

// FindByLine looks up the mapping record covering lineNumber.
func (s *converterService) FindByLine(ctx context.Context, lineNumber int) (FindByLineResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	mappings := s.lastMappings
	s.mu.Unlock()

	m, found := mapping.FindByLine(mappings, lineNumber)
	if !found {
		logger.DebugContext(ctx, "no mapping covers line", "line", lineNumber)
	}
	return FindByLineResponse{Mapping: m, Found: found}, nil
}
