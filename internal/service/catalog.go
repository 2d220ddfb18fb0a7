package service

import (
	"errors"
	"fmt"
	"time"

	"assessment-portal-backend/internal/database/models"
	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService serves the read side of the portal: tenant-scoped
// organization, project and facility lookups used to populate the survey
// form.
type CatalogService struct {
	orgs       repository.OrganizationRepositoryInterface
	facilities repository.FacilityRepositoryInterface
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	orgs repository.OrganizationRepositoryInterface,
	facilities repository.FacilityRepositoryInterface,
) *CatalogService {
	return &CatalogService{
		orgs:       orgs,
		facilities: facilities,
	}
}

// OrganizationResponse represents an organization in list responses
type OrganizationResponse struct {
	ID               uuid.UUID `json:"id"`
	OrganizationName string    `json:"organization_name"`
	Project          string    `json:"project"`
	CreatedAt        time.Time `json:"created_at"`
}

// FacilityResponse represents the full facility row
type FacilityResponse struct {
	ID                     uuid.UUID `json:"id"`
	OrganizationID         uuid.UUID `json:"organization_id"`
	FacilityType           string    `json:"facility_type"`
	FacilityAddress        string    `json:"facility_address"`
	FacilityStatus         string    `json:"facility_status"`
	InternetTechnology     string    `json:"internet_technology"`
	ISPName                string    `json:"isp_name"`
	ContractExpirationDate string    `json:"contract_expiration_date"`
	SubscribedDownload     string    `json:"subscribed_download"`
	SubscribedUpload       string    `json:"subscribed_upload"`
	Project                string    `json:"project"`
}

// ListOrganizations returns all organizations owned by the tenant
func (s *CatalogService) ListOrganizations(tenantID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.orgs.GetByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = OrganizationResponse{
			ID:               org.ID,
			OrganizationName: org.OrganizationName,
			Project:          org.Project,
			CreatedAt:        org.CreatedAt,
		}
	}
	return responses, nil
}

// ListFacilityTypes returns the distinct facility types across the tenant's organizations
func (s *CatalogService) ListFacilityTypes(tenantID uuid.UUID) ([]string, error) {
	types, err := s.facilities.ListDistinctTypes(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facility types: %w", err)
	}
	return types, nil
}

// ListProjects returns the distinct project values across the tenant's organizations
func (s *CatalogService) ListProjects(tenantID uuid.UUID) ([]string, error) {
	projects, err := s.orgs.ListDistinctProjects(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetOrganizationDetail returns the facility row for a tenant's organization
// identified by name
func (s *CatalogService) GetOrganizationDetail(name string, tenantID uuid.UUID) (*FacilityResponse, error) {
	org, err := s.orgs.GetByNameAndTenant(name, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	facility, err := s.facilities.GetByOrganizationID(org.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("failed to get facility: %w", err)
	}

	return toFacilityResponse(facility), nil
}

// ListFacilities returns facility summaries, optionally filtered by project
func (s *CatalogService) ListFacilities(project string) ([]repository.FacilitySummary, error) {
	summaries, err := s.facilities.ListSummaries(project)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	return summaries, nil
}

// GetFacility returns the full facility row by id
func (s *CatalogService) GetFacility(id uuid.UUID) (*FacilityResponse, error) {
	facility, err := s.facilities.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("failed to get facility: %w", err)
	}
	return toFacilityResponse(facility), nil
}

func toFacilityResponse(facility *models.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:                     facility.ID,
		OrganizationID:         facility.OrganizationID,
		FacilityType:           facility.FacilityType,
		FacilityAddress:        facility.FacilityAddress,
		FacilityStatus:         facility.FacilityStatus,
		InternetTechnology:     facility.InternetTechnology,
		ISPName:                facility.ISPName,
		ContractExpirationDate: facility.ContractExpirationDate,
		SubscribedDownload:     facility.SubscribedDownload,
		SubscribedUpload:       facility.SubscribedUpload,
		Project:                facility.Project,
	}
}
