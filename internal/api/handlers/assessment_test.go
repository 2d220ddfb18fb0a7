package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/mocks"
	"assessment-portal-backend/internal/repository"
	"assessment-portal-backend/internal/service"
	"assessment-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubDocumentStore fakes the upload sink without touching the filesystem
type stubDocumentStore struct {
	url      string
	err      error
	saved    int
	lastName string
}

func (s *stubDocumentStore) Save(file *multipart.FileHeader) (string, error) {
	s.saved++
	s.lastName = file.Filename
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

// AssessmentHandlerTestSuite defines the test suite for AssessmentHandler
type AssessmentHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockAssessmentService *mocks.MockAssessmentServiceInterface
	documentStore         *stubDocumentStore
	handler               *AssessmentHandler
	httpSuite             *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AssessmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssessmentService = mocks.NewMockAssessmentServiceInterface(suite.ctrl)
	suite.documentStore = &stubDocumentStore{url: "/uploads/document-1-1.pdf"}

	suite.handler = NewAssessmentHandler(suite.mockAssessmentService, suite.documentStore)

	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	{
		api.GET("/assessments", suite.handler.ListAssessments)
		api.POST("/assessments", suite.handler.CreateAssessment)
		api.POST("/assessments/submit", suite.handler.SubmitAssessment)
	}
}

// TearDownTest cleans up after each test
func (suite *AssessmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func minimalFormFields() map[string]string {
	return map[string]string{
		"organizationName": "Riverside Clinic",
		"project":          "rural-broadband",
		"facilityType":     "clinic",
		"question1_speed":  "Too slow",
	}
}

// TestCreateAssessment tests submitting an assessment without a document
func (suite *AssessmentHandlerTestSuite) TestCreateAssessment() {
	expected := &service.AssessmentResponse{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		FacilityID:     uuid.New(),
		Question1Speed: "Too slow",
	}

	suite.mockAssessmentService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ uuid.UUID, form *service.SubmissionForm, _ *string) (*service.AssessmentResponse, error) {
			assert.Equal(suite.T(), "Riverside Clinic", form.OrganizationName)
			assert.Equal(suite.T(), "clinic", form.FacilityType)
			assert.Nil(suite.T(), form.StreetAddress)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/assessments", minimalFormFields(), nil)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Equal(suite.T(), 0, suite.documentStore.saved)

	var response service.AssessmentResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expected.ID, response.ID)
}

// TestCreateAssessmentWithDocument tests that the uploaded document is
// stored before the service runs and its URL is passed through
func (suite *AssessmentHandlerTestSuite) TestCreateAssessmentWithDocument() {
	suite.mockAssessmentService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ *service.SubmissionForm, documentURL *string) (*service.AssessmentResponse, error) {
			assert.NotNil(suite.T(), documentURL)
			assert.Equal(suite.T(), "/uploads/document-1-1.pdf", *documentURL)
			return &service.AssessmentResponse{ID: uuid.New()}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequestWithFile(
		"POST", "/api/assessments",
		minimalFormFields(),
		"document", "contract.pdf", []byte("pdf bytes"),
		nil,
	)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Equal(suite.T(), 1, suite.documentStore.saved)
	assert.Equal(suite.T(), "contract.pdf", suite.documentStore.lastName)
}

// TestCreateAssessmentUploadFailure tests that a failed document save
// aborts the submission before the service is invoked
func (suite *AssessmentHandlerTestSuite) TestCreateAssessmentUploadFailure() {
	suite.documentStore.err = errors.New("disk full")

	recorder := suite.httpSuite.MakeMultipartRequestWithFile(
		"POST", "/api/assessments",
		minimalFormFields(),
		"document", "contract.pdf", []byte("pdf bytes"),
		nil,
	)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to store document")
}

// TestCreateAssessmentValidationError tests that a missing required field
// maps to 400
func (suite *AssessmentHandlerTestSuite) TestCreateAssessmentValidationError() {
	suite.mockAssessmentService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.NewValidationError("organizationName", "is required")).
		Times(1)

	fields := minimalFormFields()
	delete(fields, "organizationName")

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/assessments", fields, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "organizationName")
}

// TestCreateAssessmentMalformedSpeed tests that an unparseable subscribed
// speed maps to 400
func (suite *AssessmentHandlerTestSuite) TestCreateAssessmentMalformedSpeed() {
	suite.mockAssessmentService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.NewMalformedInputError("subscribedSpeed", "expected <download>/<upload>")).
		Times(1)

	fields := minimalFormFields()
	fields["subscribedSpeed"] = "100mbps"

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/assessments", fields, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "subscribedSpeed")
}

// TestCreateAssessmentMalformedCost tests that a non-numeric cost is
// rejected at the form boundary without reaching the service
func (suite *AssessmentHandlerTestSuite) TestCreateAssessmentMalformedCost() {
	fields := minimalFormFields()
	fields["monthly_internet_cost"] = "a lot"

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/assessments", fields, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "monthly_internet_cost")
}

// TestCreateAssessmentServiceError tests that an unexpected service failure
// maps to 500
func (suite *AssessmentHandlerTestSuite) TestCreateAssessmentServiceError() {
	suite.mockAssessmentService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/assessments", minimalFormFields(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to submit assessment")
}

// TestSubmitAssessment tests the update-workflow variant
func (suite *AssessmentHandlerTestSuite) TestSubmitAssessment() {
	created := &service.AssessmentResponse{ID: uuid.New()}

	suite.mockAssessmentService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(created, nil).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/assessments/submit", minimalFormFields(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Assessment submitted successfully", response["message"])
	assert.Equal(suite.T(), created.ID.String(), response["id"])
}

// TestListAssessments tests listing the joined assessment view
func (suite *AssessmentHandlerTestSuite) TestListAssessments() {
	rows := []repository.AssessmentRow{
		{ID: uuid.New(), OrganizationName: "Riverside Clinic", FacilityType: "clinic"},
	}

	suite.mockAssessmentService.EXPECT().
		ListByTenant(gomock.Any()).
		Return(rows, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/assessments", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []repository.AssessmentRow
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Riverside Clinic", response[0].OrganizationName)
}

// TestListAssessmentsServiceError tests the list failure path
func (suite *AssessmentHandlerTestSuite) TestListAssessmentsServiceError() {
	suite.mockAssessmentService.EXPECT().
		ListByTenant(gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/assessments", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to list assessments")
}

// TestAssessmentHandlerTestSuite runs the test suite
func TestAssessmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssessmentHandlerTestSuite))
}
