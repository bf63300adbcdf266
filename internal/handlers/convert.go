package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"html2md-mapper/internal/contextutil"
	"html2md-mapper/internal/mapping"
	"html2md-mapper/internal/service"
)

// ConvertHandler handles HTTP requests for HTML→Markdown conversion.
type ConvertHandler struct {
	converterService service.ConverterService
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(converterService service.ConverterService) *ConvertHandler {
	return &ConvertHandler{
		converterService: converterService,
	}
}

// ConvertRequest represents the HTTP request payload for conversion.
type ConvertRequest struct {
	HTMLText string `json:"html_text"`
}

// ConvertResponse represents the HTTP response payload for conversion.
type ConvertResponse struct {
	Message            string            `json:"message"`
	Markdown           string            `json:"markdown"`
	HTMLWithIDs        string            `json:"html_with_ids"`
	Mappings           []mapping.Mapping `json:"mappings"`
	OriginalHTMLLength int               `json:"original_html_length"`
	Status             string            `json:"status"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for conversion.
func (h *ConvertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.WarnContext(ctx, "request body too large", "limit", maxErr.Limit)
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcReq := service.ConvertRequest{
		HTMLText: req.HTMLText,
	}

	svcResp, err := h.converterService.ConvertHTML(ctx, svcReq)
	if err != nil {
		handleServiceError(w, r, err, "Failed to convert HTML")
		return
	}

	result := svcResp.Result
	mappings := result.Mappings
	if mappings == nil {
		mappings = []mapping.Mapping{}
	}

	resp := ConvertResponse{
		Message:            "HTML converted successfully",
		Markdown:           result.MarkdownResult,
		HTMLWithIDs:        result.HTMLWithIDs,
		Mappings:           mappings,
		OriginalHTMLLength: result.OriginalHTMLLength,
		Status:             result.Status,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
}

// handleServiceError maps service errors to appropriate HTTP status codes.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	if errors.Is(err, service.ErrConversionFailed) {
		// Expected engine-level failure, surfaced with its message.
		msg := strings.TrimSpace(strings.TrimPrefix(err.Error(), service.ErrConversionFailed.Error()+":"))
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Conversion failed: %s", msg))
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
