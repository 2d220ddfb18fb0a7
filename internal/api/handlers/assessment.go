package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"assessment-portal-backend/internal/auth"
	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/logger"
	"assessment-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentStore is the upload sink used for the optional assessment document
type DocumentStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// AssessmentHandler handles HTTP requests for assessment submissions
type AssessmentHandler struct {
	service   service.AssessmentServiceInterface
	documents DocumentStore
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(service service.AssessmentServiceInterface, documents DocumentStore) *AssessmentHandler {
	return &AssessmentHandler{service: service, documents: documents}
}

// CreateAssessment handles POST /api/assessments
// @Summary Submit an assessment
// @Description Resolve the organization, upsert the facility and append the assessment. Multipart form with an optional document file.
// @Tags assessments
// @Accept mpfd
// @Produce json
// @Param document formData file false "Supporting document"
// @Success 201 {object} service.AssessmentResponse "Created assessment"
// @Failure 400 {object} map[string]interface{} "Missing or malformed field"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assessments [post]
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	response, ok := h.submit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, response)
}

// SubmitAssessment handles POST /api/assessments/submit, the
// update-workflow variant that acknowledges with a message instead of
// echoing the created row.
// @Summary Submit an assessment (update workflow)
// @Tags assessments
// @Accept mpfd
// @Produce json
// @Success 200 {object} map[string]interface{} "Submission accepted"
// @Failure 400 {object} map[string]interface{} "Missing or malformed field"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assessments/submit [post]
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	response, ok := h.submit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assessment submitted successfully", "id": response.ID})
}

// ListAssessments handles GET /api/assessments
// @Summary List the tenant's assessments
// @Description Joined view of assessments with organization and facility fields
// @Tags assessments
// @Produce json
// @Success 200 {array} repository.AssessmentRow "Assessments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assessments [get]
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	tenantID := auth.TenantFromContext(c)

	rows, err := h.service.ListByTenant(tenantID)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to list assessments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assessments"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// submit runs the shared multipart workflow. The document upload, when
// present, must succeed before the service is invoked: a file that did
// not save never yields an assessment row.
func (h *AssessmentHandler) submit(c *gin.Context) (*service.AssessmentResponse, bool) {
	tenantID := auth.TenantFromContext(c)

	form, err := buildSubmissionForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	var documentURL *string
	file, err := c.FormFile("document")
	if err == nil && file != nil {
		url, err := h.documents.Save(file)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Error("document upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document"})
			return nil, false
		}
		documentURL = &url
	}

	response, err := h.service.Submit(tenantID, form, documentURL)
	if err != nil {
		switch {
		case apperrors.IsValidation(err), apperrors.IsMalformedInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).Error("assessment submission failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit assessment"})
		}
		return nil, false
	}

	return response, true
}

// buildSubmissionForm lifts the multipart fields into the typed form.
// Optional fields are only set when the submission carries them, which is
// what lets the facility update stay a sparse patch.
func buildSubmissionForm(c *gin.Context) (*service.SubmissionForm, error) {
	form := &service.SubmissionForm{
		OrganizationName:      c.PostForm("organizationName"),
		Project:               c.PostForm("project"),
		FacilityType:          c.PostForm("facilityType"),
		Question1Speed:        c.PostForm("question1_speed"),
		Question2Reliability:  c.PostForm("question2_reliability"),
		Question3Support:      c.PostForm("question3_support"),
		Question4Cost:         c.PostForm("question4_cost"),
		Question5Sufficient:   c.PostForm("question5_sufficient"),
		Question6FutureNeeds:  c.PostForm("question6_future_needs"),
		Question7Limitations:  c.PostForm("question7_limitations"),
		Question8Improvements: c.PostForm("question8_improvements"),
	}

	form.StreetAddress = optionalField(c, "streetAddress")
	form.Status = optionalField(c, "status")
	form.InternetType = optionalField(c, "internetType")
	form.ISPName = optionalField(c, "ispName")
	form.ContractExpiration = optionalField(c, "contractExpiration")
	form.SubscribedSpeed = optionalField(c, "subscribedSpeed")

	var err error
	if form.MonthlyInternetCost, err = optionalCost(c, "monthly_internet_cost"); err != nil {
		return nil, err
	}
	if form.MonthlyVoiceCost, err = optionalCost(c, "monthly_voice_cost"); err != nil {
		return nil, err
	}
	if form.MonthlyOtherServiceCost, err = optionalCost(c, "monthly_other_service_cost"); err != nil {
		return nil, err
	}

	return form, nil
}

func optionalField(c *gin.Context, name string) *string {
	value, ok := c.GetPostForm(name)
	if !ok {
		return nil
	}
	return &value
}

func optionalCost(c *gin.Context, name string) (*float64, error) {
	value, ok := c.GetPostForm(name)
	if !ok || value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, apperrors.NewMalformedInputError(name, "must be a number")
	}
	return &parsed, nil
}
