package testutils

import (
	"fmt"

	"company-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Factories build unsaved model values with unique defaults. IDs are left
// zero so the database assigns them on insert.

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and password "password"
func (f *UserFactory) Create() *models.User {
	user := &models.User{
		Name:    "Test User",
		Email:   fmt.Sprintf("user-%s@test.com", uuid.New().String()[:8]),
		IsAdmin: false,
	}
	_ = user.SetPassword("password")
	return user
}

// Admin creates a test admin User
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Name = "Test Admin"
	user.IsAdmin = true
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with unique default values
func (f *CompanyFactory) Create() *models.Company {
	tag := uuid.New().String()[:8]
	return &models.Company{
		Name:    "Test Company " + tag,
		Email:   fmt.Sprintf("contact-%s@company.test", tag),
		Logo:    "logos/" + tag + ".png",
		Website: fmt.Sprintf("https://company-%s.test", tag),
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// WithEmail sets a custom email for the company
func (f *CompanyFactory) WithEmail(email string) *models.Company {
	company := f.Create()
	company.Email = email
	return company
}

// WithWebsite sets a custom website for the company
func (f *CompanyFactory) WithWebsite(website string) *models.Company {
	company := f.Create()
	company.Website = website
	return company
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee for the given company
func (f *EmployeeFactory) Create(companyID uint) *models.Employee {
	tag := uuid.New().String()[:8]
	return &models.Employee{
		FirstName: "John",
		LastName:  "Doe",
		CompanyID: companyID,
		Email:     fmt.Sprintf("john-%s@employee.test", tag),
		Phone:     "+1-555-" + tag,
	}
}

// WithName sets a custom first and last name for the employee
func (f *EmployeeFactory) WithName(companyID uint, firstName, lastName string) *models.Employee {
	employee := f.Create(companyID)
	employee.FirstName = firstName
	employee.LastName = lastName
	return employee
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(companyID uint, email string) *models.Employee {
	employee := f.Create(companyID)
	employee.Email = email
	return employee
}

// WithPhone sets a custom phone for the employee
func (f *EmployeeFactory) WithPhone(companyID uint, phone string) *models.Employee {
	employee := f.Create(companyID)
	employee.Phone = phone
	return employee
}
