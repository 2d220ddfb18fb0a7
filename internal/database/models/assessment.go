package models

import "github.com/google/uuid"

// Assessment is one submitted broadband self-assessment: the eight survey
// responses, the monthly cost figures and an optional uploaded document.
// Append-only; rows reference both the resolved organization and facility.
type Assessment struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FacilityID     uuid.UUID `json:"facility_id" gorm:"type:uuid;not null;index" validate:"required"`

	Question1Speed        string `json:"question1_speed" gorm:"type:text"`
	Question2Reliability  string `json:"question2_reliability" gorm:"type:text"`
	Question3Support      string `json:"question3_support" gorm:"type:text"`
	Question4Cost         string `json:"question4_cost" gorm:"type:text"`
	Question5Sufficient   string `json:"question5_sufficient" gorm:"type:text"`
	Question6FutureNeeds  string `json:"question6_future_needs" gorm:"type:text"`
	Question7Limitations  string `json:"question7_limitations" gorm:"type:text"`
	Question8Improvements string `json:"question8_improvements" gorm:"type:text"`

	MonthlyInternetCost     *float64 `json:"monthly_internet_cost" gorm:"type:numeric"`
	MonthlyVoiceCost        *float64 `json:"monthly_voice_cost" gorm:"type:numeric"`
	MonthlyOtherServiceCost *float64 `json:"monthly_other_service_cost" gorm:"type:numeric"`

	DocumentURL *string `json:"document_url" gorm:"size:500"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Facility     Facility     `json:"facility,omitempty" gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assessment
func (Assessment) TableName() string {
	return "assessments"
}
