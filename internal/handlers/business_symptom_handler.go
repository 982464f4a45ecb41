package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aurelianno/advinow-interview-challenge/internal/models"
	"github.com/aurelianno/advinow-interview-challenge/internal/repositories"
	"github.com/aurelianno/advinow-interview-challenge/internal/responses"
	"github.com/aurelianno/advinow-interview-challenge/internal/services"
)

// LinkLister is the slice of the link service the handler needs.
type LinkLister interface {
	ListLinks(ctx context.Context, filter repositories.LinkFilter) ([]models.BusinessSymptomRow, error)
}

type BusinessSymptomHandler struct {
	links LinkLister
}

func NewBusinessSymptomHandler(links LinkLister) *BusinessSymptomHandler {
	return &BusinessSymptomHandler{links: links}
}

// ListBusinessSymptoms handles GET /business-symptoms
func (h *BusinessSymptomHandler) ListBusinessSymptoms(c *gin.Context) {
	var filter repositories.LinkFilter

	if raw := c.Query("business_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "business_id must be an integer")
			return
		}
		filter.BusinessID = &id
	}

	if raw := c.Query("diagnostic"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "diagnostic must be a boolean")
			return
		}
		filter.Diagnostic = &v
	}

	rows, err := h.links.ListLinks(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "no business-symptom data found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "failed to query business-symptom links")
		return
	}

	c.JSON(http.StatusOK, rows)
}
