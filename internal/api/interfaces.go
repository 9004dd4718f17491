// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
)

// HealthHandler handles liveness checks
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// FileHandler handles document upload and retrieval
type FileHandler interface {
	HandleUploadFile(c echo.Context) error
	HandleRecentFiles(c echo.Context) error
	HandleGetFile(c echo.Context) error
	HandleDeleteFile(c echo.Context) error
}

// ConvertHandler handles conversion job operations
type ConvertHandler interface {
	HandleStartConvert(c echo.Context) error
	HandleConvertStatus(c echo.Context) error
	HandleConvertElements(c echo.Context) error
	HandleConvertShapes(c echo.Context) error
	HandleConvertShapesMsgpack(c echo.Context) error
}

// CheckHandler handles validation, comparison, and check-rule operations
type CheckHandler interface {
	HandleValidate(c echo.Context) error
	HandleCompare(c echo.Context) error
	HandleGetCheckRules(c echo.Context) error
	HandleUpdateCheckRules(c echo.Context) error
}
