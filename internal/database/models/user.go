package models

// User represents a portal account. Each user is a tenant: every
// Organization it submits assessments for is scoped to its id.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`

	// Relationships
	Organizations []Organization `json:"organizations,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
