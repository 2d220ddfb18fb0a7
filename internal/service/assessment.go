package service

import (
	"errors"
	"fmt"
	"time"

	"assessment-portal-backend/internal/database/models"
	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentService resolves or creates the owning organization, upserts
// the facility and appends the assessment row for each submission.
type AssessmentService struct {
	orgs        repository.OrganizationRepositoryInterface
	facilities  repository.FacilityRepositoryInterface
	assessments repository.AssessmentRepositoryInterface
	validator   *validator.Validate
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	orgs repository.OrganizationRepositoryInterface,
	facilities repository.FacilityRepositoryInterface,
	assessments repository.AssessmentRepositoryInterface,
	validator *validator.Validate,
) *AssessmentService {
	return &AssessmentService{
		orgs:        orgs,
		facilities:  facilities,
		assessments: assessments,
		validator:   validator,
	}
}

// AssessmentResponse represents the persisted assessment returned to the caller
type AssessmentResponse struct {
	ID                      uuid.UUID `json:"id"`
	OrganizationID          uuid.UUID `json:"organization_id"`
	FacilityID              uuid.UUID `json:"facility_id"`
	Question1Speed          string    `json:"question1_speed"`
	Question2Reliability    string    `json:"question2_reliability"`
	Question3Support        string    `json:"question3_support"`
	Question4Cost           string    `json:"question4_cost"`
	Question5Sufficient     string    `json:"question5_sufficient"`
	Question6FutureNeeds    string    `json:"question6_future_needs"`
	Question7Limitations    string    `json:"question7_limitations"`
	Question8Improvements   string    `json:"question8_improvements"`
	MonthlyInternetCost     *float64  `json:"monthly_internet_cost"`
	MonthlyVoiceCost        *float64  `json:"monthly_voice_cost"`
	MonthlyOtherServiceCost *float64  `json:"monthly_other_service_cost"`
	DocumentURL             *string   `json:"document_url"`
	CreatedAt               time.Time `json:"created_at"`
}

// Submit runs the full resolve/upsert/append workflow for one submission.
// documentURL is the reference produced by the upload sink, nil when no
// file was attached. Per call: at most one organization insert, at most
// one facility insert-or-update, exactly one assessment insert.
func (s *AssessmentService) Submit(tenantID uuid.UUID, form *SubmissionForm, documentURL *string) (*AssessmentResponse, error) {
	// Required fields first; nothing is written before this passes.
	if err := s.validateRequired(form); err != nil {
		return nil, err
	}

	org, err := s.resolveOrganization(tenantID, form)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve organization: %w", err)
	}

	facility, err := s.upsertFacility(org, form)
	if err != nil {
		return nil, err
	}

	assessment := &models.Assessment{
		OrganizationID:          org.ID,
		FacilityID:              facility.ID,
		Question1Speed:          form.Question1Speed,
		Question2Reliability:    form.Question2Reliability,
		Question3Support:        form.Question3Support,
		Question4Cost:           form.Question4Cost,
		Question5Sufficient:     form.Question5Sufficient,
		Question6FutureNeeds:    form.Question6FutureNeeds,
		Question7Limitations:    form.Question7Limitations,
		Question8Improvements:   form.Question8Improvements,
		MonthlyInternetCost:     form.MonthlyInternetCost,
		MonthlyVoiceCost:        form.MonthlyVoiceCost,
		MonthlyOtherServiceCost: form.MonthlyOtherServiceCost,
		DocumentURL:             documentURL,
	}
	if err := s.assessments.Create(assessment); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	return toAssessmentResponse(assessment), nil
}

// ListByTenant returns the joined assessment view for a tenant
func (s *AssessmentService) ListByTenant(tenantID uuid.UUID) ([]repository.AssessmentRow, error) {
	rows, err := s.assessments.ListByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return rows, nil
}

func (s *AssessmentService) validateRequired(form *SubmissionForm) error {
	err := s.validator.Struct(form)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		field := validationErrs[0].Field()
		if name, ok := formFieldNames[field]; ok {
			field = name
		}
		return apperrors.NewValidationError(field, "is required")
	}
	return fmt.Errorf("validation failed: %w", err)
}

func (s *AssessmentService) resolveOrganization(tenantID uuid.UUID, form *SubmissionForm) (*models.Organization, error) {
	return s.orgs.ResolveOrCreate(&models.Organization{
		OrganizationName: form.OrganizationName,
		Project:          form.Project,
		UserID:           tenantID,
	})
}

// upsertFacility applies the latest-submission-wins rule: insert when the
// organization has no facility yet, otherwise patch only the fields the
// incoming form carries.
func (s *AssessmentService) upsertFacility(org *models.Organization, form *SubmissionForm) (*models.Facility, error) {
	existing, err := s.facilities.GetByOrganizationID(org.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up facility: %w", err)
	}

	if existing == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return s.createFacility(org, form)
	}
	return s.patchFacility(existing, form)
}

func (s *AssessmentService) createFacility(org *models.Organization, form *SubmissionForm) (*models.Facility, error) {
	facility := &models.Facility{
		OrganizationID: org.ID,
		FacilityType:   form.FacilityType,
		Project:        form.Project,
	}
	if form.StreetAddress != nil {
		facility.FacilityAddress = *form.StreetAddress
	}
	if form.Status != nil {
		facility.FacilityStatus = *form.Status
	}
	if form.InternetType != nil {
		facility.InternetTechnology = *form.InternetType
	}
	if form.ISPName != nil {
		facility.ISPName = *form.ISPName
	}
	if form.ContractExpiration != nil {
		facility.ContractExpirationDate = *form.ContractExpiration
	}
	if form.SubscribedSpeed != nil {
		download, upload, err := ParseSubscribedSpeed(*form.SubscribedSpeed)
		if err != nil {
			return nil, err
		}
		facility.SubscribedDownload = download
		facility.SubscribedUpload = upload
	}

	if err := s.facilities.Create(facility); err != nil {
		return nil, fmt.Errorf("failed to create facility: %w", err)
	}
	return facility, nil
}

func (s *AssessmentService) patchFacility(facility *models.Facility, form *SubmissionForm) (*models.Facility, error) {
	updates := map[string]interface{}{
		"facility_type": form.FacilityType,
		"project":       form.Project,
	}
	facility.FacilityType = form.FacilityType
	facility.Project = form.Project

	if form.StreetAddress != nil {
		updates["facility_address"] = *form.StreetAddress
		facility.FacilityAddress = *form.StreetAddress
	}
	if form.Status != nil {
		updates["facility_status"] = *form.Status
		facility.FacilityStatus = *form.Status
	}
	if form.InternetType != nil {
		updates["internet_technology"] = *form.InternetType
		facility.InternetTechnology = *form.InternetType
	}
	if form.ISPName != nil {
		updates["isp_name"] = *form.ISPName
		facility.ISPName = *form.ISPName
	}
	if form.ContractExpiration != nil {
		updates["contract_expiration_date"] = *form.ContractExpiration
		facility.ContractExpirationDate = *form.ContractExpiration
	}
	if form.SubscribedSpeed != nil {
		download, upload, err := ParseSubscribedSpeed(*form.SubscribedSpeed)
		if err != nil {
			return nil, err
		}
		updates["subscribed_download"] = download
		updates["subscribed_upload"] = upload
		facility.SubscribedDownload = download
		facility.SubscribedUpload = upload
	}

	if err := s.facilities.UpdateFields(facility.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update facility: %w", err)
	}
	return facility, nil
}

func toAssessmentResponse(assessment *models.Assessment) *AssessmentResponse {
	return &AssessmentResponse{
		ID:                      assessment.ID,
		OrganizationID:          assessment.OrganizationID,
		FacilityID:              assessment.FacilityID,
		Question1Speed:          assessment.Question1Speed,
		Question2Reliability:    assessment.Question2Reliability,
		Question3Support:        assessment.Question3Support,
		Question4Cost:           assessment.Question4Cost,
		Question5Sufficient:     assessment.Question5Sufficient,
		Question6FutureNeeds:    assessment.Question6FutureNeeds,
		Question7Limitations:    assessment.Question7Limitations,
		Question8Improvements:   assessment.Question8Improvements,
		MonthlyInternetCost:     assessment.MonthlyInternetCost,
		MonthlyVoiceCost:        assessment.MonthlyVoiceCost,
		MonthlyOtherServiceCost: assessment.MonthlyOtherServiceCost,
		DocumentURL:             assessment.DocumentURL,
		CreatedAt:               assessment.CreatedAt,
	}
}
