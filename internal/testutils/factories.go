package testutils

import (
	"time"

	"assessment-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: "user-" + id.String()[:8] + "@test.com",
		// bcrypt hash of "password"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// Create creates a test Organization owned by the given tenant
func (f *OrganizationFactory) Create(userID uuid.UUID) *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationName: "Test Organization",
		Project:          "Test Project",
		UserID:           userID,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(userID uuid.UUID, name string) *models.Organization {
	org := f.Create(userID)
	org.OrganizationName = name
	return org
}

// FacilityFactory provides methods to create test Facility data
type FacilityFactory struct{}

// Create creates a test Facility owned by the given organization
func (f *FacilityFactory) Create(orgID uuid.UUID) *models.Facility {
	return &models.Facility{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:     orgID,
		FacilityType:       "Clinic",
		FacilityAddress:    "1 Main Street",
		FacilityStatus:     "active",
		InternetTechnology: "Fiber",
		ISPName:            "Test ISP",
		SubscribedDownload: "100",
		SubscribedUpload:   "20",
		Project:            "Test Project",
	}
}

// AssessmentFactory provides methods to create test Assessment data
type AssessmentFactory struct{}

// Create creates a test Assessment referencing the given owners
func (f *AssessmentFactory) Create(orgID, facilityID uuid.UUID) *models.Assessment {
	return &models.Assessment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:       orgID,
		FacilityID:           facilityID,
		Question1Speed:       "fast",
		Question2Reliability: "mostly reliable",
		Question3Support:     "adequate",
		Question4Cost:        "reasonable",
	}
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Facility     *FacilityFactory
	Assessment   *AssessmentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         &UserFactory{},
		Organization: &OrganizationFactory{},
		Facility:     &FacilityFactory{},
		Assessment:   &AssessmentFactory{},
	}
}
