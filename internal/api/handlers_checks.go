// handlers_checks.go - Validation, comparison, and check-rule handlers
package api

import (
	"net/http"
	"sync"

	"github.com/diagram-converter/backend/internal/comparator"
	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/storage"
	"github.com/diagram-converter/backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// CheckHandlerImpl implements the CheckHandler interface
type CheckHandlerImpl struct {
	store storage.Store

	mu    sync.RWMutex
	rules *models.CheckRules
}

// NewCheckHandler creates a new check handler. A nil rules argument uses
// the defaults.
func NewCheckHandler(store storage.Store, rules *models.CheckRules) CheckHandler {
	if rules == nil {
		rules = models.DefaultCheckRules()
	}
	return &CheckHandlerImpl{store: store, rules: rules}
}

func (h *CheckHandlerImpl) currentRules() *models.CheckRules {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rules
}

type validateRequest struct {
	SourceFileID string `json:"sourceFileId"`
	OutputFileID string `json:"outputFileId"`
}

// HandleValidate validates one stored source/output document pair
func (h *CheckHandlerImpl) HandleValidate(c echo.Context) error {
	var req validateRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.SourceFileID == "" {
		return NewValidationError("sourceFileId")
	}
	if req.OutputFileID == "" {
		return NewValidationError("outputFileId")
	}

	sourcePath, err := h.store.GetFilePath(req.SourceFileID)
	if err != nil {
		return NewNotFoundError("file", req.SourceFileID)
	}
	outputPath, err := h.store.GetFilePath(req.OutputFileID)
	if err != nil {
		return NewNotFoundError("file", req.OutputFileID)
	}

	report, err := validator.New(h.currentRules()).ValidatePair(sourcePath, outputPath)
	if err != nil {
		return NewUnprocessableError("document did not parse", err)
	}

	return c.JSON(http.StatusOK, report)
}

type compareRequest struct {
	SourceFileID  string `json:"sourceFileId"`
	OutputFileID  string `json:"outputFileId"`
	ShapeID       string `json:"shapeId"`
	Attribute     string `json:"attribute"`
	SourceOrdinal int    `json:"sourceOrdinal,omitempty"` // 1-based pick among ambiguous matches
	OutputOrdinal int    `json:"outputOrdinal,omitempty"`
}

type compareAmbiguousResponse struct {
	Message       string             `json:"message"`
	SourceMatches []comparator.Match `json:"sourceMatches"`
	OutputMatches []comparator.Match `json:"outputMatches"`
}

// HandleCompare compares one attribute of a shape between the two dialects.
// When a substring matches several shapes and no ordinal was supplied, the
// candidate listings are returned with a 409 so the caller can pick.
func (h *CheckHandlerImpl) HandleCompare(c echo.Context) error {
	var req compareRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.ShapeID == "" {
		return NewValidationError("shapeId")
	}
	if req.Attribute == "" {
		return NewValidationError("attribute")
	}

	sourcePath, err := h.store.GetFilePath(req.SourceFileID)
	if err != nil {
		return NewNotFoundError("file", req.SourceFileID)
	}
	outputPath, err := h.store.GetFilePath(req.OutputFileID)
	if err != nil {
		return NewNotFoundError("file", req.OutputFileID)
	}

	comp := comparator.New(h.currentRules())

	sourceRoot, err := comparator.ParseLenient(sourcePath)
	if err != nil {
		return NewUnprocessableError("source document did not parse", err)
	}
	outputRoot, err := comparator.ParseLenient(outputPath)
	if err != nil {
		return NewUnprocessableError("output document did not parse", err)
	}

	sourceMatches := comp.FindMatches(sourceRoot, req.ShapeID, req.Attribute, comparator.DialectSource)
	outputMatches := comp.FindMatches(outputRoot, req.ShapeID, req.Attribute, comparator.DialectOutput)

	if len(sourceMatches) == 0 && len(outputMatches) == 0 {
		return NewNotFoundError("shape", req.ShapeID)
	}

	needsPick := (len(sourceMatches) > 1 && req.SourceOrdinal == 0) ||
		(len(outputMatches) > 1 && req.OutputOrdinal == 0)
	if needsPick {
		return c.JSON(http.StatusConflict, compareAmbiguousResponse{
			Message:       "multiple matches found; retry with sourceOrdinal/outputOrdinal",
			SourceMatches: sourceMatches,
			OutputMatches: outputMatches,
		})
	}

	sourcePick, err := comparator.SelectMatch(sourceMatches, req.SourceOrdinal)
	if err != nil && err != comparator.ErrNoMatch {
		return NewBadRequestError("invalid sourceOrdinal", err)
	}
	outputPick, err := comparator.SelectMatch(outputMatches, req.OutputOrdinal)
	if err != nil && err != comparator.ErrNoMatch {
		return NewBadRequestError("invalid outputOrdinal", err)
	}

	result := comparator.CompareValues(sourcePick, outputPick, req.ShapeID, req.Attribute)
	return c.JSON(http.StatusOK, result)
}

// HandleGetCheckRules returns the active check rules
func (h *CheckHandlerImpl) HandleGetCheckRules(c echo.Context) error {
	return c.JSON(http.StatusOK, h.currentRules())
}

// HandleUpdateCheckRules replaces the active check rules
func (h *CheckHandlerImpl) HandleUpdateCheckRules(c echo.Context) error {
	rules := models.DefaultCheckRules()
	if err := c.Bind(rules); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if len(rules.SourceIDAttrs) == 0 || len(rules.OutputIDAttrs) == 0 {
		return NewValidationError("id attribute candidates")
	}

	h.mu.Lock()
	h.rules = rules
	h.mu.Unlock()

	return c.JSON(http.StatusOK, rules)
}
