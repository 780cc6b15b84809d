package service

import (
	"errors"
	"fmt"
	"time"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/repository"
	"company-portal-backend/internal/validation"

	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	companies repository.CompanyRepositoryInterface
	validator *validation.Validator
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, companies repository.CompanyRepositoryInterface, validator *validation.Validator) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		companies: companies,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,max=255"`
	CompanyID uint   `json:"company_id" form:"company_id" validate:"required,numeric"`
	Email     string `json:"email" form:"email" validate:"required,email,dns,max=255"`
	Phone     string `json:"phone" form:"phone" validate:"required,max=255"`
}

// UpdateEmployeeRequest represents the request to update an employee. Email
// and phone carry only the required rule here; format and uniqueness are
// re-checked by the service only when the value changed.
type UpdateEmployeeRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,max=255"`
	CompanyID uint   `json:"company_id" form:"company_id" validate:"required,numeric"`
	Email     string `json:"email" form:"email" validate:"required"`
	Phone     string `json:"phone" form:"phone" validate:"required"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uint             `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	FullName  string           `json:"full_name"`
	CompanyID uint             `json:"company_id"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Company   *CompanyResponse `json:"company,omitempty"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

// List returns all employees ordered by first name ascending, each with its
// company attached.
func (s *EmployeeService) List() ([]EmployeeResponse, error) {
	employees, err := s.repo.GetAllWithCompany()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *toEmployeeResponseWithCompany(&employees[i])
	}
	return responses, nil
}

// Create validates the fields and inserts the record
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	report := validation.Errors{}
	report.Merge(s.validator.Check(req))

	if req.CompanyID != 0 {
		exists, err := s.companies.Exists(req.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to check company: %w", err)
		}
		if !exists {
			report.Add("company_id", validation.ExistsMessage("company id"))
		}
	}

	if req.Email != "" {
		taken, err := s.repo.EmailTaken(req.Email, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to check employee email: %w", err)
		}
		if taken {
			report.Add("email", validation.UniqueMessage("email"))
		}
	}

	if req.Phone != "" {
		taken, err := s.repo.PhoneTaken(req.Phone, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to check employee phone: %w", err)
		}
		if taken {
			report.Add("phone", validation.UniqueMessage("phone"))
		}
	}

	if report.Any() {
		return nil, &apperrors.ValidationError{Fields: report}
	}

	employee := &models.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CompanyID: req.CompanyID,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.repo.Create(employee); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewPersistenceError(err)
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return toEmployeeResponse(employee), nil
}

// GetByID returns an employee with its company attached
func (s *EmployeeService) GetByID(id uint) (*EmployeeResponse, error) {
	employee, err := s.repo.GetWithCompany(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return toEmployeeResponseWithCompany(employee), nil
}

// Update applies the changed fields. Email and phone are revalidated only
// when they differ from the persisted value.
func (s *EmployeeService) Update(id uint, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	report := validation.Errors{}
	report.Merge(s.validator.Check(req))

	// The company reference is re-checked even when unchanged: the company
	// may have been deleted since the employee was written, and an update
	// must not commit a dangling reference.
	if req.CompanyID != 0 {
		exists, err := s.companies.Exists(req.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to check company: %w", err)
		}
		if !exists {
			report.Add("company_id", validation.ExistsMessage("company id"))
		}
	}

	if req.Email != employee.Email {
		for _, msg := range s.validator.Var("email", req.Email, "omitempty,email,dns,max=255") {
			report.Add("email", msg)
		}
		taken, err := s.repo.EmailTaken(req.Email, employee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check employee email: %w", err)
		}
		if taken {
			report.Add("email", validation.UniqueMessage("email"))
		}
	}

	if req.Phone != employee.Phone {
		for _, msg := range s.validator.Var("phone", req.Phone, "omitempty,max=255") {
			report.Add("phone", msg)
		}
		taken, err := s.repo.PhoneTaken(req.Phone, employee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check employee phone: %w", err)
		}
		if taken {
			report.Add("phone", validation.UniqueMessage("phone"))
		}
	}

	if report.Any() {
		return nil, &apperrors.ValidationError{Fields: report}
	}

	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.CompanyID = req.CompanyID
	employee.Email = req.Email
	employee.Phone = req.Phone

	if err := s.repo.Update(employee); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewPersistenceError(err)
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return toEmployeeResponse(employee), nil
}

// Delete removes the employee
func (s *EmployeeService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		FullName:  employee.FullName(),
		CompanyID: employee.CompanyID,
		Email:     employee.Email,
		Phone:     employee.Phone,
		CreatedAt: employee.CreatedAt.Format(time.RFC3339),
		UpdatedAt: employee.UpdatedAt.Format(time.RFC3339),
	}
}

func toEmployeeResponseWithCompany(employee *models.Employee) *EmployeeResponse {
	resp := toEmployeeResponse(employee)
	if employee.Company != nil {
		resp.Company = &CompanyResponse{
			ID:        employee.Company.ID,
			Name:      employee.Company.Name,
			Email:     employee.Company.Email,
			Logo:      employee.Company.Logo,
			Website:   employee.Company.Website,
			CreatedAt: employee.Company.CreatedAt.Format(time.RFC3339),
			UpdatedAt: employee.Company.UpdatedAt.Format(time.RFC3339),
		}
	}
	return resp
}
