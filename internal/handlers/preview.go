package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"html2md-mapper/internal/contextutil"
)

// PreviewHandler renders Markdown back to HTML, so the tester page can show
// conversion output the way a Markdown viewer would.
type PreviewHandler struct {
	md goldmark.Markdown
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Strikethrough,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
		),
	}
}

// PreviewRequest represents the HTTP request payload for a preview.
type PreviewRequest struct {
	Markdown string `json:"markdown"`
}

// PreviewResponse represents the HTTP response payload for a preview.
type PreviewResponse struct {
	HTML string `json:"html"`
}

// ServeHTTP handles POST requests for Markdown previews.
func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var buf bytes.Buffer
	if err := h.md.Convert([]byte(req.Markdown), &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render markdown")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(PreviewResponse{HTML: buf.String()}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
