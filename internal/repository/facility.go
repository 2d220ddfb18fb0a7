package repository

import (
	"assessment-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacilitySummary is the projection returned by facility listings:
// the facility id and the owning organization's name.
type FacilitySummary struct {
	ID           uuid.UUID `json:"id"`
	FacilityName string    `json:"facility_name"`
}

// FacilityRepository handles database operations for facilities
type FacilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository creates a new facility repository
func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// Create creates a new facility
func (r *FacilityRepository) Create(facility *models.Facility) error {
	return r.db.Create(facility).Error
}

// GetByID retrieves a facility by ID
func (r *FacilityRepository) GetByID(id uuid.UUID) (*models.Facility, error) {
	var facility models.Facility
	err := r.db.First(&facility, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &facility, nil
}

// GetByOrganizationID retrieves the facility owned by an organization
func (r *FacilityRepository) GetByOrganizationID(orgID uuid.UUID) (*models.Facility, error) {
	var facility models.Facility
	err := r.db.First(&facility, "organization_id = ?", orgID).Error
	if err != nil {
		return nil, err
	}
	return &facility, nil
}

// UpdateFields applies a sparse patch to a facility. Only the columns in
// the updates map are written; everything else keeps its stored value.
func (r *FacilityRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Facility{}).Where("id = ?", id).Updates(updates).Error
}

// ListDistinctTypes retrieves the distinct facility types across a tenant's organizations
func (r *FacilityRepository) ListDistinctTypes(userID uuid.UUID) ([]string, error) {
	var types []string
	err := r.db.Model(&models.Facility{}).
		Joins("JOIN organizations ON organizations.id = facilities.organization_id").
		Where("organizations.user_id = ?", userID).
		Distinct("facilities.facility_type").
		Order("facilities.facility_type").
		Pluck("facilities.facility_type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// ListSummaries retrieves facilities projected to {id, facility_name},
// optionally filtered by project. An empty project returns all facilities.
func (r *FacilityRepository) ListSummaries(project string) ([]FacilitySummary, error) {
	query := r.db.Model(&models.Facility{}).
		Select("facilities.id, organizations.organization_name AS facility_name").
		Joins("JOIN organizations ON organizations.id = facilities.organization_id")
	if project != "" {
		query = query.Where("facilities.project = ?", project)
	}

	var summaries []FacilitySummary
	err := query.Order("facility_name").Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
