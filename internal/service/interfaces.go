package service

import (
	"assessment-portal-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssessmentServiceInterface defines the interface for the assessment workflow
type AssessmentServiceInterface interface {
	Submit(tenantID uuid.UUID, form *SubmissionForm, documentURL *string) (*AssessmentResponse, error)
	ListByTenant(tenantID uuid.UUID) ([]repository.AssessmentRow, error)
}

// CatalogServiceInterface defines the interface for the read-side lookups
type CatalogServiceInterface interface {
	ListOrganizations(tenantID uuid.UUID) ([]OrganizationResponse, error)
	ListFacilityTypes(tenantID uuid.UUID) ([]string, error)
	ListProjects(tenantID uuid.UUID) ([]string, error)
	GetOrganizationDetail(name string, tenantID uuid.UUID) (*FacilityResponse, error)
	ListFacilities(project string) ([]repository.FacilitySummary, error)
	GetFacility(id uuid.UUID) (*FacilityResponse, error)
}
