package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/repository"
	"company-portal-backend/internal/storage"
	"company-portal-backend/internal/validation"

	"gorm.io/gorm"
)

const (
	logoDir   = "logos"
	maxLogoKB = 1024
)

// CompanyService handles business logic for companies, including the logo
// file-store side effects around each mutation.
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	files     storage.Store
	validator *validation.Validator
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, files storage.Store, validator *validation.Validator) *CompanyService {
	return &CompanyService{
		repo:      repo,
		files:     files,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name    string                `json:"name" form:"name" validate:"required,max=255"`
	Email   string                `json:"email" form:"email" validate:"required,email,dns,max=255"`
	Website string                `json:"website" form:"website" validate:"required,url"`
	Logo    *multipart.FileHeader `json:"-" form:"logo"`
}

// UpdateCompanyRequest represents the request to update a company. Email and
// website carry only the required rule here; format and uniqueness are
// re-checked by the service only when the value changed.
type UpdateCompanyRequest struct {
	Name    string                `json:"name" form:"name" validate:"required,max=255"`
	Email   string                `json:"email" form:"email" validate:"required"`
	Website string                `json:"website" form:"website" validate:"required"`
	Logo    *multipart.FileHeader `json:"-" form:"logo"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Logo      string             `json:"logo"`
	Website   string             `json:"website"`
	Employees []EmployeeResponse `json:"employees,omitempty"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

// List returns all companies ordered by name ascending, each with its
// employees attached.
func (s *CompanyService) List() ([]CompanyResponse, error) {
	companies, err := s.repo.GetAllWithEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = *s.toResponseWithEmployees(&companies[i])
	}
	return responses, nil
}

// Create validates the fields, stores the logo, then inserts the record.
// When the insert fails after the logo was stored, the stored file is
// deleted before the error is surfaced, so a failed create never leaves an
// orphaned file.
func (s *CompanyService) Create(ctx context.Context, req *CreateCompanyRequest) (*CompanyResponse, error) {
	report := validation.Errors{}
	report.Merge(s.validator.Check(req))

	for _, msg := range validation.CheckImage("logo", req.Logo, true, maxLogoKB) {
		report.Add("logo", msg)
	}

	if req.Email != "" {
		taken, err := s.repo.EmailTaken(req.Email, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to check company email: %w", err)
		}
		if taken {
			report.Add("email", validation.UniqueMessage("email"))
		}
	}

	if req.Website != "" {
		taken, err := s.repo.WebsiteTaken(req.Website, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to check company website: %w", err)
		}
		if taken {
			report.Add("website", validation.UniqueMessage("website"))
		}
	}

	if report.Any() {
		return nil, &apperrors.ValidationError{Fields: report}
	}

	logoPath, err := s.files.Put(ctx, logoDir, req.Logo)
	if err != nil {
		return nil, fmt.Errorf("failed to store logo: %w", err)
	}

	company := &models.Company{
		Name:    req.Name,
		Email:   req.Email,
		Logo:    logoPath,
		Website: req.Website,
	}

	if err := s.repo.Create(company); err != nil {
		// Clean up the stored file before reporting; a failed create must
		// not leave an orphaned logo.
		_ = s.files.Delete(ctx, logoPath)
		if repository.IsUniqueViolation(err) {
			// A concurrent write beat the pre-validation.
			return nil, apperrors.NewPersistenceError(err)
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return s.toResponse(company), nil
}

// GetByID returns a company with its employees attached
func (s *CompanyService) GetByID(id uint) (*CompanyResponse, error) {
	company, err := s.repo.GetWithEmployees(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return s.toResponseWithEmployees(company), nil
}

// Update applies the changed fields. Email and website are revalidated only
// when they differ from the persisted value. A new logo replaces the old
// stored file before the row is written; a row-update failure after the swap
// is surfaced without undoing it.
func (s *CompanyService) Update(ctx context.Context, id uint, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	report := validation.Errors{}
	report.Merge(s.validator.Check(req))

	for _, msg := range validation.CheckImage("logo", req.Logo, false, maxLogoKB) {
		report.Add("logo", msg)
	}

	if req.Email != company.Email {
		for _, msg := range s.validator.Var("email", req.Email, "omitempty,email,dns,max=255") {
			report.Add("email", msg)
		}
		taken, err := s.repo.EmailTaken(req.Email, company.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check company email: %w", err)
		}
		if taken {
			report.Add("email", validation.UniqueMessage("email"))
		}
	}

	if req.Website != company.Website {
		for _, msg := range s.validator.Var("website", req.Website, "omitempty,url") {
			report.Add("website", msg)
		}
		taken, err := s.repo.WebsiteTaken(req.Website, company.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check company website: %w", err)
		}
		if taken {
			report.Add("website", validation.UniqueMessage("website"))
		}
	}

	if report.Any() {
		return nil, &apperrors.ValidationError{Fields: report}
	}

	if req.Logo != nil {
		_ = s.files.Delete(ctx, company.Logo)

		logoPath, err := s.files.Put(ctx, logoDir, req.Logo)
		if err != nil {
			return nil, fmt.Errorf("failed to store logo: %w", err)
		}
		company.Logo = logoPath
	}

	company.Name = req.Name
	company.Email = req.Email
	company.Website = req.Website

	if err := s.repo.Update(company); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewPersistenceError(err)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.toResponse(company), nil
}

// Delete removes the company and its stored logo. A logo file that was never
// stored (or already gone) is not an error.
func (s *CompanyService) Delete(ctx context.Context, id uint) error {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if company.Logo != "" {
		exists, err := s.files.Exists(ctx, company.Logo)
		if err != nil {
			return fmt.Errorf("failed to check logo file: %w", err)
		}
		if exists {
			if err := s.files.Delete(ctx, company.Logo); err != nil {
				return fmt.Errorf("failed to delete logo file: %w", err)
			}
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

func (s *CompanyService) toResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		Email:     company.Email,
		Logo:      company.Logo,
		Website:   company.Website,
		CreatedAt: company.CreatedAt.Format(time.RFC3339),
		UpdatedAt: company.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *CompanyService) toResponseWithEmployees(company *models.Company) *CompanyResponse {
	resp := s.toResponse(company)
	for i := range company.Employees {
		resp.Employees = append(resp.Employees, *toEmployeeResponse(&company.Employees[i]))
	}
	return resp
}
