package repository

import (
	"testing"

	"assessment-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.WithEmail("taken@test.com")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.User.WithEmail("taken@test.com")
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("lookup@test.com")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("lookup@test.com")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
	suite.Equal(user.PasswordHash, retrieved.PasswordHash)
}

// TestGetByEmailNotFound tests looking up an email that does not exist
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	user, err := suite.repo.GetByEmail("ghost@test.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Email, retrieved.Email)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
