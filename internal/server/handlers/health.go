package handlers

import (
	"net/http"
	"time"

	"fieldgen-server/internal/shared/config"
	"fieldgen-server/internal/shared/response"
)

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().Format(time.RFC3339),
		Environment: config.GlobalConfig.Server.Environment,
	}

	response.Success(w, http.StatusOK, resp)
}
