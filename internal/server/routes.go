package server

import (
	"log/slog"
	"net/http"

	"fieldgen-server/internal/layout"
	layoutHandlers "fieldgen-server/internal/layout/handlers"
	"fieldgen-server/internal/render"
	serverHandlers "fieldgen-server/internal/server/handlers"
)

type Routes struct {
	layoutService *layout.Service
	renderService *render.Service
	logger        *slog.Logger
}

func NewRoutes(layoutService *layout.Service, renderService *render.Service, logger *slog.Logger) *Routes {
	return &Routes{
		layoutService: layoutService,
		renderService: renderService,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	indexHandler := serverHandlers.NewIndexHandler()
	healthHandler := serverHandlers.NewHealthHandler()
	fieldHandler := layoutHandlers.NewFieldHandler(r.layoutService, r.renderService)

	mux.Handle("/{$}", indexHandler)
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/{challenge}/{direction}", fieldHandler.Generate)

	logger.Info("Routes configured successfully",
		"endpoints", []string{"/", "/api/server/health", "/{challenge}/{direction}"},
	)

	return mux
}
