package service_test

import (
	"errors"
	"testing"

	"assessment-portal-backend/internal/database/models"
	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/mocks"
	"assessment-portal-backend/internal/repository"
	"assessment-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssessmentServiceTestSuite defines the test suite for AssessmentService
type AssessmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockFacilityRepo   *mocks.MockFacilityRepositoryInterface
	mockAssessmentRepo *mocks.MockAssessmentRepositoryInterface
	assessmentService  *service.AssessmentService
	validator          *validator.Validate
	tenantID           uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AssessmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockFacilityRepo = mocks.NewMockFacilityRepositoryInterface(suite.ctrl)
	suite.mockAssessmentRepo = mocks.NewMockAssessmentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.tenantID = uuid.New()

	suite.assessmentService = service.NewAssessmentService(
		suite.mockOrgRepo,
		suite.mockFacilityRepo,
		suite.mockAssessmentRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *AssessmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssessmentServiceTestSuite) newForm() *service.SubmissionForm {
	return &service.SubmissionForm{
		OrganizationName:      "Riverside Clinic",
		Project:               "rural-broadband",
		FacilityType:          "clinic",
		Question1Speed:        "Too slow during peak hours",
		Question2Reliability:  "Weekly outages",
		Question3Support:      "Slow to respond",
		Question4Cost:         "Above market rate",
		Question5Sufficient:   "No",
		Question6FutureNeeds:  "Telehealth video",
		Question7Limitations:  "No fiber in the area",
		Question8Improvements: "Need symmetric upload",
	}
}

// TestSubmitCreatesOrganizationAndFacility tests the first submission for a new organization
func (suite *AssessmentServiceTestSuite) TestSubmitCreatesOrganizationAndFacility() {
	form := suite.newForm()
	address := "12 River Rd"
	speed := "100/20"
	form.StreetAddress = &address
	form.SubscribedSpeed = &speed

	orgID := uuid.New()
	facilityID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		ResolveOrCreate(gomock.Any()).
		DoAndReturn(func(org *models.Organization) (*models.Organization, error) {
			assert.Equal(suite.T(), form.OrganizationName, org.OrganizationName)
			assert.Equal(suite.T(), suite.tenantID, org.UserID)
			org.ID = orgID
			return org, nil
		}).
		Times(1)

	// No facility exists yet, so the workflow inserts one
	suite.mockFacilityRepo.EXPECT().
		GetByOrganizationID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockFacilityRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(facility *models.Facility) error {
			assert.Equal(suite.T(), orgID, facility.OrganizationID)
			assert.Equal(suite.T(), "clinic", facility.FacilityType)
			assert.Equal(suite.T(), address, facility.FacilityAddress)
			assert.Equal(suite.T(), "100", facility.SubscribedDownload)
			assert.Equal(suite.T(), "20", facility.SubscribedUpload)
			facility.ID = facilityID
			return nil
		}).
		Times(1)

	suite.mockAssessmentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(assessment *models.Assessment) error {
			assert.Equal(suite.T(), orgID, assessment.OrganizationID)
			assert.Equal(suite.T(), facilityID, assessment.FacilityID)
			assert.Equal(suite.T(), form.Question1Speed, assessment.Question1Speed)
			assert.Nil(suite.T(), assessment.DocumentURL)
			return nil
		}).
		Times(1)

	response, err := suite.assessmentService.Submit(suite.tenantID, form, nil)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), orgID, response.OrganizationID)
	assert.Equal(suite.T(), facilityID, response.FacilityID)
}

// TestSubmitPatchesExistingFacility tests that a repeat submission only
// updates the fields it carries
func (suite *AssessmentServiceTestSuite) TestSubmitPatchesExistingFacility() {
	form := suite.newForm()
	isp := "Fiber Valley"
	form.ISPName = &isp

	orgID := uuid.New()
	existing := &models.Facility{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		OrganizationID:     orgID,
		FacilityType:       "library",
		FacilityAddress:    "old address",
		InternetTechnology: "DSL",
	}

	suite.mockOrgRepo.EXPECT().
		ResolveOrCreate(gomock.Any()).
		DoAndReturn(func(org *models.Organization) (*models.Organization, error) {
			org.ID = orgID
			return org, nil
		}).
		Times(1)

	suite.mockFacilityRepo.EXPECT().
		GetByOrganizationID(orgID).
		Return(existing, nil).
		Times(1)

	suite.mockFacilityRepo.EXPECT().
		UpdateFields(existing.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), "clinic", updates["facility_type"])
			assert.Equal(suite.T(), isp, updates["isp_name"])
			// Absent form fields must not appear in the patch
			assert.NotContains(suite.T(), updates, "facility_address")
			assert.NotContains(suite.T(), updates, "internet_technology")
			assert.NotContains(suite.T(), updates, "subscribed_download")
			return nil
		}).
		Times(1)

	suite.mockAssessmentRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.assessmentService.Submit(suite.tenantID, form, nil)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), existing.ID, response.FacilityID)
}

// TestSubmitCarriesDocumentURL tests that an uploaded document reference
// lands on the assessment row
func (suite *AssessmentServiceTestSuite) TestSubmitCarriesDocumentURL() {
	form := suite.newForm()
	documentURL := "/uploads/document-1700000000000-123456789.pdf"

	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		ResolveOrCreate(gomock.Any()).
		DoAndReturn(func(org *models.Organization) (*models.Organization, error) {
			org.ID = orgID
			return org, nil
		}).
		Times(1)

	suite.mockFacilityRepo.EXPECT().
		GetByOrganizationID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockFacilityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockAssessmentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(assessment *models.Assessment) error {
			assert.NotNil(suite.T(), assessment.DocumentURL)
			assert.Equal(suite.T(), documentURL, *assessment.DocumentURL)
			return nil
		}).
		Times(1)

	response, err := suite.assessmentService.Submit(suite.tenantID, form, &documentURL)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), documentURL, *response.DocumentURL)
}

// TestSubmitMissingRequiredField tests that validation fails before anything
// is written
func (suite *AssessmentServiceTestSuite) TestSubmitMissingRequiredField() {
	form := suite.newForm()
	form.OrganizationName = ""

	response, err := suite.assessmentService.Submit(suite.tenantID, form, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "organizationName")
}

// TestSubmitMalformedSpeedNoAssessment tests that an unparseable subscribed
// speed aborts the workflow before the assessment insert
func (suite *AssessmentServiceTestSuite) TestSubmitMalformedSpeedNoAssessment() {
	form := suite.newForm()
	speed := "100mbps"
	form.SubscribedSpeed = &speed

	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		ResolveOrCreate(gomock.Any()).
		DoAndReturn(func(org *models.Organization) (*models.Organization, error) {
			org.ID = orgID
			return org, nil
		}).
		Times(1)

	suite.mockFacilityRepo.EXPECT().
		GetByOrganizationID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	// No facility create, no assessment create
	response, err := suite.assessmentService.Submit(suite.tenantID, form, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsMalformedInput(err))
}

// TestSubmitOrganizationResolveError tests error handling when the
// organization cannot be resolved
func (suite *AssessmentServiceTestSuite) TestSubmitOrganizationResolveError() {
	form := suite.newForm()

	suite.mockOrgRepo.EXPECT().
		ResolveOrCreate(gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	response, err := suite.assessmentService.Submit(suite.tenantID, form, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "failed to resolve organization")
}

// TestListByTenant tests listing the joined assessment view
func (suite *AssessmentServiceTestSuite) TestListByTenant() {
	rows := []repository.AssessmentRow{
		{ID: uuid.New(), OrganizationName: "Riverside Clinic"},
		{ID: uuid.New(), OrganizationName: "Hill Library"},
	}

	suite.mockAssessmentRepo.EXPECT().
		ListByTenant(suite.tenantID).
		Return(rows, nil).
		Times(1)

	result, err := suite.assessmentService.ListByTenant(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), "Riverside Clinic", result[0].OrganizationName)
}

// TestListByTenantError tests error handling when the list query fails
func (suite *AssessmentServiceTestSuite) TestListByTenantError() {
	suite.mockAssessmentRepo.EXPECT().
		ListByTenant(suite.tenantID).
		Return(nil, errors.New("connection refused")).
		Times(1)

	result, err := suite.assessmentService.ListByTenant(suite.tenantID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.Contains(suite.T(), err.Error(), "failed to list assessments")
}

// TestAssessmentServiceTestSuite runs the test suite
func TestAssessmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceTestSuite))
}
