package handlers

import (
	"context"
	"net/http"

	"github.com/amaumene/mellab/internal/models"
	"github.com/sirupsen/logrus"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	logger *logrus.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

// Invoke reports liveness
func (h *HealthHandler) Invoke(ctx context.Context, params map[string]string) models.Response {
	return models.NewResponse(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// ServeHTTP handles the health check endpoint
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	Serve(w, r, h)
}
