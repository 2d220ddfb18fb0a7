package handlers

import (
	"net/http"

	"assessment-portal-backend/internal/auth"
	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/logger"
	"assessment-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for tenant-scoped lookups
type OrganizationHandler struct {
	service service.CatalogServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.CatalogServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// ListOrganizations handles GET /api/organizations
// @Summary List the tenant's organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} service.OrganizationResponse "Organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	tenantID := auth.TenantFromContext(c)

	orgs, err := h.service.ListOrganizations(tenantID)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to list organizations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list organizations"})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// ListFacilityTypes handles GET /api/facility-types
// @Summary List distinct facility types for the tenant
// @Tags organizations
// @Produce json
// @Success 200 {array} string "Facility types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /facility-types [get]
func (h *OrganizationHandler) ListFacilityTypes(c *gin.Context) {
	tenantID := auth.TenantFromContext(c)

	types, err := h.service.ListFacilityTypes(tenantID)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to list facility types")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list facility types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// ListProjects handles GET /api/projects
// @Summary List distinct projects for the tenant
// @Tags organizations
// @Produce json
// @Success 200 {array} string "Projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects [get]
func (h *OrganizationHandler) ListProjects(c *gin.Context) {
	tenantID := auth.TenantFromContext(c)

	projects, err := h.service.ListProjects(tenantID)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to list projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetOrganizationDetail handles GET /api/organizations/:name
// @Summary Get the facility detail for one of the tenant's organizations
// @Tags organizations
// @Produce json
// @Param name path string true "Organization name"
// @Success 200 {object} service.FacilityResponse "Facility detail"
// @Failure 404 {object} map[string]interface{} "Organization or facility not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{name} [get]
func (h *OrganizationHandler) GetOrganizationDetail(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
		return
	}

	tenantID := auth.TenantFromContext(c)

	detail, err := h.service.GetOrganizationDetail(name, tenantID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to get organization detail")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization detail"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
