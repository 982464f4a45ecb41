package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelianno/advinow-interview-challenge/internal/models"
	"github.com/aurelianno/advinow-interview-challenge/internal/responses"
	"github.com/aurelianno/advinow-interview-challenge/internal/services"
)

// Importer is the slice of the import service the handler needs.
type Importer interface {
	Import(ctx context.Context, filename string, file io.Reader) (*services.ImportResult, error)
	Runs(ctx context.Context) ([]models.ImportRun, error)
}

type ImportHandler struct {
	importer Importer
}

func NewImportHandler(importer Importer) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// ImportBusinessSymptoms handles POST /import-business-symptoms
func (h *ImportHandler) ImportBusinessSymptoms(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "a CSV file upload is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importer.Import(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			responses.Fail(c, http.StatusBadRequest, err, "invalid CSV input")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "import failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListImportRuns handles GET /import-runs
func (h *ImportHandler) ListImportRuns(c *gin.Context) {
	runs, err := h.importer.Runs(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "failed to list import runs")
		return
	}

	c.JSON(http.StatusOK, runs)
}
