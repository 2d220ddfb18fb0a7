package models

import "github.com/google/uuid"

// Facility describes the connectivity profile of an organization's site.
// One facility per organization in this workflow; resubmissions patch the
// existing row, fields absent from a submission keep their stored values.
type Facility struct {
	BaseModel
	OrganizationID         uuid.UUID `json:"organization_id" gorm:"type:uuid;uniqueIndex;not null" validate:"required"`
	FacilityType           string    `json:"facility_type" gorm:"not null;size:100" validate:"required,max=100"`
	FacilityAddress        string    `json:"facility_address" gorm:"size:300"`
	FacilityStatus         string    `json:"facility_status" gorm:"size:50"`
	InternetTechnology     string    `json:"internet_technology" gorm:"size:100"`
	ISPName                string    `json:"isp_name" gorm:"size:200"`
	ContractExpirationDate string    `json:"contract_expiration_date" gorm:"size:50"`
	SubscribedDownload     string    `json:"subscribed_download" gorm:"size:50"`
	SubscribedUpload       string    `json:"subscribed_upload" gorm:"size:50"`
	Project                string    `json:"project" gorm:"size:200"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Facility
func (Facility) TableName() string {
	return "facilities"
}
