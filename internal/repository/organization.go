package repository

import (
	"assessment-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// ResolveOrCreate inserts the organization keyed by (organization_name,
// user_id) or returns the existing row. The insert carries ON CONFLICT DO
// NOTHING against the composite unique index, so two concurrent submissions
// with the same new name cannot both insert; the loser of the race falls
// through to the fetch.
func (r *OrganizationRepository) ResolveOrCreate(org *models.Organization) (*models.Organization, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_name"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(org)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return org, nil
	}

	// Conflict: another call owns the row. Fetch it.
	var existing models.Organization
	err := r.db.First(&existing, "organization_name = ? AND user_id = ?", org.OrganizationName, org.UserID).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByNameAndTenant retrieves an organization by name within a tenant's scope
func (r *OrganizationRepository) GetByNameAndTenant(name string, userID uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "organization_name = ? AND user_id = ?", name, userID).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByTenant retrieves all organizations owned by a tenant
func (r *OrganizationRepository) GetByTenant(userID uuid.UUID) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Where("user_id = ?", userID).Order("organization_name").Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListDistinctProjects retrieves the distinct project values across a tenant's organizations
func (r *OrganizationRepository) ListDistinctProjects(userID uuid.UUID) ([]string, error) {
	var projects []string
	err := r.db.Model(&models.Organization{}).
		Where("user_id = ?", userID).
		Distinct("project").
		Order("project").
		Pluck("project", &projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
