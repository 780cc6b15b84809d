package repository

import (
	"company-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetWithEmployees(id uint) (*models.Company, error)
	GetAllWithEmployees() ([]models.Company, error)
	Update(company *models.Company) error
	Delete(id uint) error
	EmailTaken(email string, excludeID uint) (bool, error)
	WebsiteTaken(website string, excludeID uint) (bool, error)
	Exists(id uint) (bool, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetWithCompany(id uint) (*models.Employee, error)
	GetAllWithCompany() ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uint) error
	EmailTaken(email string, excludeID uint) (bool, error)
	PhoneTaken(phone string, excludeID uint) (bool, error)
}
