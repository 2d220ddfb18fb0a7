package handlers

import (
	"net/http"

	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/logger"
	"assessment-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FacilityHandler handles HTTP requests for facilities
type FacilityHandler struct {
	service service.CatalogServiceInterface
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(service service.CatalogServiceInterface) *FacilityHandler {
	return &FacilityHandler{service: service}
}

// ListFacilities handles GET /api/facilities?project=<p>
// @Summary List facilities, optionally filtered by project
// @Tags facilities
// @Produce json
// @Param project query string false "Project filter"
// @Success 200 {array} repository.FacilitySummary "Facility summaries"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /facilities [get]
func (h *FacilityHandler) ListFacilities(c *gin.Context) {
	project := c.Query("project")

	summaries, err := h.service.ListFacilities(project)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to list facilities")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list facilities"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetFacility handles GET /api/facilities/:id
// @Summary Get one facility
// @Tags facilities
// @Produce json
// @Param id path string true "Facility ID (UUID)"
// @Success 200 {object} service.FacilityResponse "Facility"
// @Failure 400 {object} map[string]interface{} "Invalid facility ID"
// @Failure 404 {object} map[string]interface{} "Facility not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /facilities/{id} [get]
func (h *FacilityHandler) GetFacility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid facility ID: invalid UUID format"})
		return
	}

	facility, err := h.service.GetFacility(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to get facility")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get facility"})
		return
	}

	c.JSON(http.StatusOK, facility)
}
