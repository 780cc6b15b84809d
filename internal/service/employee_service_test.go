package service

import (
	"testing"

	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/repository"
	"company-portal-backend/internal/testutils"
	"company-portal-backend/internal/validation"

	"github.com/stretchr/testify/suite"
)

// EmployeeServiceTestSuite tests EmployeeService against a real database
type EmployeeServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.EmployeeRepository
	companyRepo   *repository.CompanyRepository
	service       *EmployeeService
	companies     *testutils.CompanyFactory
	people        *testutils.EmployeeFactory
}

func (suite *EmployeeServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.companyRepo = repository.NewCompanyRepository(suite.baseTestSuite.DB)
	validator := validation.New(validation.WithDomainCheck(func(string) bool { return true }))
	suite.service = NewEmployeeService(suite.repo, suite.companyRepo, validator)
	suite.companies = testutils.NewCompanyFactory()
	suite.people = testutils.NewEmployeeFactory()
}

func (suite *EmployeeServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmployeeServiceTestSuite) createCompany() uint {
	company := suite.companies.Create()
	suite.NoError(suite.companyRepo.Create(company))
	return company.ID
}

func (suite *EmployeeServiceTestSuite) validationError(err error) *apperrors.ValidationError {
	suite.Require().True(apperrors.IsValidation(err), "expected validation error, got %v", err)
	return err.(*apperrors.ValidationError)
}

func (suite *EmployeeServiceTestSuite) TestCreateSuccess() {
	companyID := suite.createCompany()

	resp, err := suite.service.Create(&CreateEmployeeRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		CompanyID: companyID,
		Email:     "jane.doe@acme.test",
		Phone:     "+1-555-0000",
	})

	suite.NoError(err)
	suite.NotZero(resp.ID)
	suite.Equal("Jane Doe", resp.FullName)
	suite.Equal(companyID, resp.CompanyID)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmptyRequest() {
	resp, err := suite.service.Create(&CreateEmployeeRequest{})

	suite.Nil(resp)
	ve := suite.validationError(err)
	suite.Equal([]string{"The first name field is required."}, ve.Fields["first_name"])
	suite.Equal([]string{"The last name field is required."}, ve.Fields["last_name"])
	suite.Equal([]string{"The company id field is required."}, ve.Fields["company_id"])
	suite.Equal([]string{"The email field is required."}, ve.Fields["email"])
	suite.Equal([]string{"The phone field is required."}, ve.Fields["phone"])
}

func (suite *EmployeeServiceTestSuite) TestCreateUnknownCompany() {
	resp, err := suite.service.Create(&CreateEmployeeRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		CompanyID: 999999,
		Email:     "jane.doe@acme.test",
		Phone:     "+1-555-0000",
	})

	suite.Nil(resp)
	ve := suite.validationError(err)
	suite.Equal([]string{"The selected company id is invalid."}, ve.Fields["company_id"])
}

func (suite *EmployeeServiceTestSuite) TestCreateDuplicateEmailAndPhone() {
	companyID := suite.createCompany()
	existing := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(existing))

	resp, err := suite.service.Create(&CreateEmployeeRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		CompanyID: companyID,
		Email:     existing.Email,
		Phone:     existing.Phone,
	})

	suite.Nil(resp)
	ve := suite.validationError(err)
	suite.Equal([]string{"The email has already been taken."}, ve.Fields["email"])
	suite.Equal([]string{"The phone has already been taken."}, ve.Fields["phone"])
}

func (suite *EmployeeServiceTestSuite) TestGetByIDWithCompany() {
	companyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))

	resp, err := suite.service.GetByID(employee.ID)

	suite.NoError(err)
	suite.Equal(employee.ID, resp.ID)
	suite.Require().NotNil(resp.Company)
	suite.Equal(companyID, resp.Company.ID)
}

func (suite *EmployeeServiceTestSuite) TestGetByIDNotFound() {
	resp, err := suite.service.GetByID(999999)

	suite.Nil(resp)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *EmployeeServiceTestSuite) TestListOrderedByFirstName() {
	companyID := suite.createCompany()
	suite.NoError(suite.repo.Create(suite.people.WithName(companyID, "Boris", "King")))
	suite.NoError(suite.repo.Create(suite.people.WithName(companyID, "Alma", "Reed")))

	employees, err := suite.service.List()

	suite.NoError(err)
	suite.Len(employees, 2)
	suite.Equal("Alma", employees[0].FirstName)
	suite.Equal("Boris", employees[1].FirstName)
}

func (suite *EmployeeServiceTestSuite) TestUpdateUnchangedPhoneSkipsChecks() {
	companyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))

	resp, err := suite.service.Update(employee.ID, &UpdateEmployeeRequest{
		FirstName: "Renamed",
		LastName:  employee.LastName,
		CompanyID: companyID,
		Email:     employee.Email,
		Phone:     employee.Phone,
	})

	suite.NoError(err)
	suite.Equal("Renamed", resp.FirstName)
}

func (suite *EmployeeServiceTestSuite) TestUpdateChangedEmailRevalidated() {
	companyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))

	resp, err := suite.service.Update(employee.ID, &UpdateEmployeeRequest{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		CompanyID: companyID,
		Email:     "broken",
		Phone:     employee.Phone,
	})

	suite.Nil(resp)
	ve := suite.validationError(err)
	suite.Equal([]string{"The email must be a valid email address."}, ve.Fields["email"])
}

func (suite *EmployeeServiceTestSuite) TestUpdateChangedPhoneToTaken() {
	companyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))
	other := suite.people.WithPhone(companyID, "+1-555-7777")
	suite.NoError(suite.repo.Create(other))

	resp, err := suite.service.Update(employee.ID, &UpdateEmployeeRequest{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		CompanyID: companyID,
		Email:     employee.Email,
		Phone:     "+1-555-7777",
	})

	suite.Nil(resp)
	ve := suite.validationError(err)
	suite.Equal([]string{"The phone has already been taken."}, ve.Fields["phone"])
}

func (suite *EmployeeServiceTestSuite) TestUpdateMoveToUnknownCompany() {
	companyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))

	resp, err := suite.service.Update(employee.ID, &UpdateEmployeeRequest{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		CompanyID: 999999,
		Email:     employee.Email,
		Phone:     employee.Phone,
	})

	suite.Nil(resp)
	ve := suite.validationError(err)
	suite.Equal([]string{"The selected company id is invalid."}, ve.Fields["company_id"])
}

func (suite *EmployeeServiceTestSuite) TestUpdateUnchangedCompanyDeletedSince() {
	companyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))

	// The company is gone but the employee row survives. An update keeping
	// the same company_id must still fail the existence check.
	suite.NoError(suite.companyRepo.Delete(companyID))

	resp, err := suite.service.Update(employee.ID, &UpdateEmployeeRequest{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		CompanyID: companyID,
		Email:     employee.Email,
		Phone:     "+1-555-3333",
	})

	suite.Nil(resp)
	ve := suite.validationError(err)
	suite.Equal([]string{"The selected company id is invalid."}, ve.Fields["company_id"])
}

func (suite *EmployeeServiceTestSuite) TestUpdateMoveToOtherCompany() {
	companyID := suite.createCompany()
	otherCompanyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))

	resp, err := suite.service.Update(employee.ID, &UpdateEmployeeRequest{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		CompanyID: otherCompanyID,
		Email:     employee.Email,
		Phone:     employee.Phone,
	})

	suite.NoError(err)
	suite.Equal(otherCompanyID, resp.CompanyID)
}

func (suite *EmployeeServiceTestSuite) TestUpdateNotFound() {
	resp, err := suite.service.Update(999999, &UpdateEmployeeRequest{
		FirstName: "Ghost",
		LastName:  "Walker",
		CompanyID: 1,
		Email:     "ghost@test.com",
		Phone:     "+1-555-0000",
	})

	suite.Nil(resp)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *EmployeeServiceTestSuite) TestDelete() {
	companyID := suite.createCompany()
	employee := suite.people.Create(companyID)
	suite.NoError(suite.repo.Create(employee))

	suite.NoError(suite.service.Delete(employee.ID))

	_, err := suite.service.GetByID(employee.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *EmployeeServiceTestSuite) TestDeleteNotFound() {
	err := suite.service.Delete(999999)
	suite.True(apperrors.IsNotFound(err))
}

// Run the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
