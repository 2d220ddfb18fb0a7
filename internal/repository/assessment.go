package repository

import (
	"assessment-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentRow is the joined view of an assessment with its organization
// and facility fields, as returned by the tenant-scoped listing.
type AssessmentRow struct {
	ID                      uuid.UUID `json:"id"`
	OrganizationName        string    `json:"organization_name"`
	Project                 string    `json:"project"`
	FacilityType            string    `json:"facility_type"`
	FacilityAddress         string    `json:"facility_address"`
	SubscribedDownload      string    `json:"subscribed_download"`
	SubscribedUpload        string    `json:"subscribed_upload"`
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
}

// AssessmentRepository handles database operations for assessments
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create creates a new assessment. Assessments are append-only; there is
// no update or delete path.
func (r *AssessmentRepository) Create(assessment *models.Assessment) error {
	return r.db.Create(assessment).Error
}

// ListByTenant retrieves the joined assessment view scoped to a tenant.
// Inner joins on both owners: an assessment whose organization or facility
// is missing for the tenant is excluded rather than surfaced with nulls.
func (r *AssessmentRepository) ListByTenant(userID uuid.UUID) ([]AssessmentRow, error) {
	var rows []AssessmentRow
	err := r.db.Model(&models.Assessment{}).
		Select(`assessments.id,
			organizations.organization_name,
			organizations.project,
			facilities.facility_type,
			facilities.facility_address,
			facilities.subscribed_download,
			facilities.subscribed_upload,
			assessments.question1_speed,
			assessments.question2_reliability,
			assessments.question3_support,
			assessments.question4_cost,
			assessments.question5_sufficient,
			assessments.question6_future_needs,
			assessments.question7_limitations,
			assessments.question8_improvements,
			assessments.monthly_internet_cost,
			assessments.monthly_voice_cost,
			assessments.monthly_other_service_cost,
			assessments.document_url`).
		Joins("JOIN organizations ON organizations.id = assessments.organization_id").
		Joins("JOIN facilities ON facilities.id = assessments.facility_id").
		Where("organizations.user_id = ?", userID).
		Order("assessments.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
