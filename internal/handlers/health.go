package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger    *slog.Logger
	menuItems int
}

// NewHealthHandler creates a new health handler.
// menuItems is the number of items loaded at startup; an empty menu
// reports the service as degraded.
func NewHealthHandler(logger *slog.Logger, menuItems int) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		menuItems: menuItems,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	MenuItems int       `json:"menuItems"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if h.menuItems == 0 {
		status = "degraded"
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   Version,
		MenuItems: h.menuItems,
	}, h.logger)
}
