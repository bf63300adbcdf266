package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"html2md-mapper/internal/contextutil"
	"html2md-mapper/internal/mapping"
	"html2md-mapper/internal/service"
)

// healthProbeHTML is a fixed input the engine must always convert cleanly.
const healthProbeHTML = "<p>health probe</p>"

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	engine service.MappingEngine
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(engine service.MappingEngine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP runs a fixed conversion through the engine and reports whether
// the converter pipeline is functional. Returns 200 when healthy, 503
// otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	var issues []string

	result := h.engine.ConvertWithMapping(healthProbeHTML)
	if result.Status == mapping.StatusConverted && len(result.Mappings) == 1 {
		checks["converter"] = "ok"
	} else {
		logger.WarnContext(ctx, "converter self-test failed", "status", result.Status, "error", result.Error)
		checks["converter"] = "error"
		issues = append(issues, "converter_self_test_failed")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}
	if len(issues) > 0 {
		response.Issues = issues
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
