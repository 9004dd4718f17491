// handlers_convert.go - Conversion job handlers
package api

import (
	"net/http"
	"strings"

	"github.com/diagram-converter/backend/internal/job"
	"github.com/diagram-converter/backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// ConvertHandlerImpl implements the ConvertHandler interface
type ConvertHandlerImpl struct {
	store  storage.Store
	jobMgr *job.Manager
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(store storage.Store, jobMgr *job.Manager) ConvertHandler {
	return &ConvertHandlerImpl{store: store, jobMgr: jobMgr}
}

type startConvertRequest struct {
	FileID string `json:"fileId"`
}

// HandleStartConvert starts a background conversion of a stored document
func (h *ConvertHandlerImpl) HandleStartConvert(c echo.Context) error {
	var req startConvertRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.FileID == "" {
		return NewValidationError("fileId")
	}

	path, err := h.store.GetFilePath(req.FileID)
	if err != nil {
		return NewNotFoundError("file", req.FileID)
	}

	h.store.SetStatus(req.FileID, "converting")
	j := h.jobMgr.Start(req.FileID, path)

	return c.JSON(http.StatusAccepted, j)
}

// HandleConvertStatus returns a job's status and progress
func (h *ConvertHandlerImpl) HandleConvertStatus(c echo.Context) error {
	id := c.Param("jobId")
	if id == "" {
		return NewValidationError("jobId")
	}

	j, ok := h.jobMgr.Get(id)
	if !ok {
		return NewNotFoundError("job", id)
	}

	return c.JSON(http.StatusOK, j)
}

// HandleConvertElements returns the rendered markup text of a completed job
func (h *ConvertHandlerImpl) HandleConvertElements(c echo.Context) error {
	id := c.Param("jobId")
	if id == "" {
		return NewValidationError("jobId")
	}

	result, ok := h.jobMgr.Result(id)
	if !ok {
		return NewNotFoundError("job result", id)
	}

	return c.Blob(http.StatusOK, "application/xaml+xml",
		[]byte(strings.Join(result.Elements, "\n")))
}

// HandleConvertShapes returns the structured shape records as JSON
func (h *ConvertHandlerImpl) HandleConvertShapes(c echo.Context) error {
	id := c.Param("jobId")
	if id == "" {
		return NewValidationError("jobId")
	}

	result, ok := h.jobMgr.Result(id)
	if !ok {
		return NewNotFoundError("job result", id)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleConvertShapesMsgpack returns the shape records in MessagePack format
func (h *ConvertHandlerImpl) HandleConvertShapesMsgpack(c echo.Context) error {
	id := c.Param("jobId")
	if id == "" {
		return NewValidationError("jobId")
	}

	result, ok := h.jobMgr.Result(id)
	if !ok {
		return NewNotFoundError("job result", id)
	}

	data, err := msgpack.Marshal(result)
	if err != nil {
		return NewInternalError("failed to encode result", err)
	}

	return c.Blob(http.StatusOK, "application/x-msgpack", data)
}
