package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"html2md-mapper/internal/contextutil"
	"html2md-mapper/internal/service"
)

// FindByLineHandler resolves a Markdown line number back to the HTML element
// that produced it, using the last conversion's mapping list.
type FindByLineHandler struct {
	converterService service.ConverterService
}

// NewFindByLineHandler creates a new FindByLineHandler.
func NewFindByLineHandler(converterService service.ConverterService) *FindByLineHandler {
	return &FindByLineHandler{
		converterService: converterService,
	}
}

// ServeHTTP handles GET requests for line lookups. When no mapping covers the
// requested line the response is an empty JSON object, not an error.
func (h *FindByLineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	lineParam := chi.URLParam(r, "line")
	lineNumber, err := strconv.Atoi(lineParam)
	if err != nil {
		logger.WarnContext(ctx, "invalid line number", "line", lineParam)
		writeError(w, http.StatusBadRequest, "Line number must be an integer")
		return
	}

	resp, err := h.converterService.FindByLine(ctx, lineNumber)
	if err != nil {
		handleServiceError(w, r, err, "Failed to look up line")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !resp.Found {
		_, _ = w.Write([]byte("{}\n"))
		return
	}
	if err := json.NewEncoder(w).Encode(resp.Mapping); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
