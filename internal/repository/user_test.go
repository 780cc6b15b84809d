package repository

import (
	"testing"

	"company-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	users         *testutils.UserFactory
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
}

func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.users.Create()

	suite.NoError(suite.repo.Create(user))
	suite.NotZero(user.ID)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, retrieved.Email)
	suite.False(retrieved.IsAdmin)
	suite.True(retrieved.CheckPassword("password"))
}

func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.users.WithEmail("lookup@test.com")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("lookup@test.com")
	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
}

func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	user, err := suite.repo.GetByEmail("missing@test.com")

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

func (suite *UserRepositoryTestSuite) TestAdminFlagPersists() {
	admin := suite.users.Admin()
	suite.NoError(suite.repo.Create(admin))

	retrieved, err := suite.repo.GetByID(admin.ID)
	suite.NoError(err)
	suite.True(retrieved.IsAdmin)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
