package repository

import (
	"testing"

	"company-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRepositoryTestSuite tests the CompanyRepository
type CompanyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CompanyRepository
	employees     *EmployeeRepository
	companies     *testutils.CompanyFactory
	people        *testutils.EmployeeFactory
}

// SetupSuite runs before all tests in the suite
func (suite *CompanyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.employees = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.companies = testutils.NewCompanyFactory()
	suite.people = testutils.NewEmployeeFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *CompanyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CompanyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CompanyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CompanyRepositoryTestSuite) TestCreateAndGetByID() {
	company := suite.companies.Create()

	err := suite.repo.Create(company)
	suite.NoError(err)
	suite.NotZero(company.ID)

	retrieved, err := suite.repo.GetByID(company.ID)
	suite.NoError(err)
	suite.Equal(company.Name, retrieved.Name)
	suite.Equal(company.Email, retrieved.Email)
	suite.Equal(company.Logo, retrieved.Logo)
	suite.Equal(company.Website, retrieved.Website)
}

func (suite *CompanyRepositoryTestSuite) TestGetByIDNotFound() {
	company, err := suite.repo.GetByID(999999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(company)
}

func (suite *CompanyRepositoryTestSuite) TestGetWithEmployees() {
	company := suite.companies.Create()
	suite.NoError(suite.repo.Create(company))

	suite.NoError(suite.employees.Create(suite.people.Create(company.ID)))
	suite.NoError(suite.employees.Create(suite.people.Create(company.ID)))

	retrieved, err := suite.repo.GetWithEmployees(company.ID)
	suite.NoError(err)
	suite.Len(retrieved.Employees, 2)
}

func (suite *CompanyRepositoryTestSuite) TestGetAllWithEmployeesOrderedByName() {
	suite.NoError(suite.repo.Create(suite.companies.WithName("Charlie Corp")))
	suite.NoError(suite.repo.Create(suite.companies.WithName("Alpha Corp")))
	suite.NoError(suite.repo.Create(suite.companies.WithName("Bravo Corp")))

	companies, err := suite.repo.GetAllWithEmployees()
	suite.NoError(err)
	suite.Len(companies, 3)
	suite.Equal("Alpha Corp", companies[0].Name)
	suite.Equal("Bravo Corp", companies[1].Name)
	suite.Equal("Charlie Corp", companies[2].Name)
}

func (suite *CompanyRepositoryTestSuite) TestUpdate() {
	company := suite.companies.Create()
	suite.NoError(suite.repo.Create(company))

	company.Name = "Renamed Corp"
	suite.NoError(suite.repo.Update(company))

	retrieved, err := suite.repo.GetByID(company.ID)
	suite.NoError(err)
	suite.Equal("Renamed Corp", retrieved.Name)
}

func (suite *CompanyRepositoryTestSuite) TestDelete() {
	company := suite.companies.Create()
	suite.NoError(suite.repo.Create(company))

	suite.NoError(suite.repo.Delete(company.ID))

	_, err := suite.repo.GetByID(company.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *CompanyRepositoryTestSuite) TestDeleteLeavesEmployees() {
	company := suite.companies.Create()
	suite.NoError(suite.repo.Create(company))

	employee := suite.people.Create(company.ID)
	suite.NoError(suite.employees.Create(employee))

	suite.NoError(suite.repo.Delete(company.ID))

	// Employee rows are not cascaded when their company goes away
	remaining, err := suite.employees.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal(company.ID, remaining.CompanyID)
}

func (suite *CompanyRepositoryTestSuite) TestEmailTaken() {
	company := suite.companies.WithEmail("taken@company.test")
	suite.NoError(suite.repo.Create(company))

	taken, err := suite.repo.EmailTaken("taken@company.test", 0)
	suite.NoError(err)
	suite.True(taken)

	// The record's own row is excluded on update checks
	taken, err = suite.repo.EmailTaken("taken@company.test", company.ID)
	suite.NoError(err)
	suite.False(taken)

	taken, err = suite.repo.EmailTaken("free@company.test", 0)
	suite.NoError(err)
	suite.False(taken)
}

func (suite *CompanyRepositoryTestSuite) TestWebsiteTaken() {
	company := suite.companies.WithWebsite("https://taken.test")
	suite.NoError(suite.repo.Create(company))

	taken, err := suite.repo.WebsiteTaken("https://taken.test", 0)
	suite.NoError(err)
	suite.True(taken)

	taken, err = suite.repo.WebsiteTaken("https://taken.test", company.ID)
	suite.NoError(err)
	suite.False(taken)
}

func (suite *CompanyRepositoryTestSuite) TestExists() {
	company := suite.companies.Create()
	suite.NoError(suite.repo.Create(company))

	exists, err := suite.repo.Exists(company.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(999999)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *CompanyRepositoryTestSuite) TestDuplicateEmailIsUniqueViolation() {
	company := suite.companies.Create()
	suite.NoError(suite.repo.Create(company))

	dup := suite.companies.Create()
	dup.Email = company.Email

	err := suite.repo.Create(dup)
	suite.Error(err)
	suite.True(IsUniqueViolation(err))

	// Other errors are not constraint violations
	suite.False(IsUniqueViolation(nil))
	suite.False(IsUniqueViolation(gorm.ErrRecordNotFound))
}

// Run the test suite
func TestCompanyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepositoryTestSuite))
}
