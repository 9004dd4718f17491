// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/diagram-converter/backend/internal/job"
	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Store   storage.Store
	JobMgr  *job.Manager
	Rules   *models.CheckRules
	Version string
}

// Handlers holds all handler instances
type Handlers struct {
	Health  HealthHandler
	Files   FileHandler
	Convert ConvertHandler
	Checks  CheckHandler
	WS      *WebSocketHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Version),
		Files:   NewFileHandler(deps.Store),
		Convert: NewConvertHandler(deps.Store, deps.JobMgr),
		Checks:  NewCheckHandler(deps.Store, deps.Rules),
		WS:      NewWebSocketHandler(deps.JobMgr),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", h.Health.HandleHealth)

	// WebSocket endpoint
	apiGroup.GET("/ws/jobs", h.WS.HandleJobEvents)

	// File management
	apiGroup.POST("/files/upload", h.Files.HandleUploadFile)
	apiGroup.GET("/files/recent", h.Files.HandleRecentFiles)
	apiGroup.GET("/files/:id", h.Files.HandleGetFile)
	apiGroup.DELETE("/files/:id", h.Files.HandleDeleteFile)

	// Conversion jobs
	apiGroup.POST("/convert", h.Convert.HandleStartConvert)
	apiGroup.GET("/convert/:jobId/status", h.Convert.HandleConvertStatus)
	apiGroup.GET("/convert/:jobId/elements", h.Convert.HandleConvertElements)
	apiGroup.GET("/convert/:jobId/shapes", h.Convert.HandleConvertShapes)
	apiGroup.GET("/convert/:jobId/shapes/msgpack", h.Convert.HandleConvertShapesMsgpack)

	// Validation and comparison
	apiGroup.POST("/validate", h.Checks.HandleValidate)
	apiGroup.POST("/compare", h.Checks.HandleCompare)
	apiGroup.GET("/checks/rules", h.Checks.HandleGetCheckRules)
	apiGroup.PUT("/checks/rules", h.Checks.HandleUpdateCheckRules)
}
