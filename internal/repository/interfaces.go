package repository

import (
	"assessment-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	ResolveOrCreate(org *models.Organization) (*models.Organization, error)
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByNameAndTenant(name string, userID uuid.UUID) (*models.Organization, error)
	GetByTenant(userID uuid.UUID) ([]models.Organization, error)
	ListDistinctProjects(userID uuid.UUID) ([]string, error)
}

// FacilityRepositoryInterface defines the interface for facility repository operations
type FacilityRepositoryInterface interface {
	Create(facility *models.Facility) error
	GetByID(id uuid.UUID) (*models.Facility, error)
	GetByOrganizationID(orgID uuid.UUID) (*models.Facility, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	ListDistinctTypes(userID uuid.UUID) ([]string, error)
	ListSummaries(project string) ([]FacilitySummary, error)
}

// AssessmentRepositoryInterface defines the interface for assessment repository operations
type AssessmentRepositoryInterface interface {
	Create(assessment *models.Assessment) error
	ListByTenant(userID uuid.UUID) ([]AssessmentRow, error)
}
