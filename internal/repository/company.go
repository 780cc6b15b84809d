package repository

import (
	"company-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetWithEmployees retrieves a company with its employees attached
func (r *CompanyRepository) GetWithEmployees(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Employees").First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAllWithEmployees retrieves all companies ordered by name ascending,
// each with its employees attached
func (r *CompanyRepository) GetAllWithEmployees() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Preload("Employees").Order("name ASC").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Update persists all fields of a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// Delete deletes a company
func (r *CompanyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Company{}, "id = ?", id).Error
}

// EmailTaken reports whether another company already holds this email.
// excludeID skips the record's own row on update checks.
func (r *CompanyRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// WebsiteTaken reports whether another company already holds this website
func (r *CompanyRepository) WebsiteTaken(website string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).
		Where("website = ? AND id <> ?", website, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Exists reports whether a company with this ID exists
func (r *CompanyRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
