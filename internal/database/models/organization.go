package models

import "github.com/google/uuid"

// Organization represents an organization registered by a tenant through
// the assessment workflow. The pair (organization_name, user_id) is the
// natural key: submissions referencing a name already seen for the tenant
// reuse the existing row instead of creating a new one.
type Organization struct {
	BaseModel
	OrganizationName string    `json:"organization_name" gorm:"uniqueIndex:idx_organizations_name_tenant;not null;size:200" validate:"required,min=1,max=200"`
	Project          string    `json:"project" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_organizations_name_tenant;not null;index" validate:"required"`

	// Relationships
	Facility    *Facility    `json:"facility,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Assessments []Assessment `json:"assessments,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
