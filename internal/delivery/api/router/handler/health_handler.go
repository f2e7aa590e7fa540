package handler

import (
	"net/http"

	"lifeline/internal/delivery/api/response"
	"lifeline/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and the active profile store
type HealthHandler struct {
	backend repository.Backend
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(backend repository.Backend) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": h.backend.String(),
	})
}
