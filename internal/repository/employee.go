package repository

import (
	"company-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetWithCompany retrieves an employee with its company attached
func (r *EmployeeRepository) GetWithCompany(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("Company").First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAllWithCompany retrieves all employees ordered by first name ascending,
// each with its company attached
func (r *EmployeeRepository) GetAllWithCompany() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Preload("Company").Order("first_name ASC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// Update persists all fields of an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}

// EmailTaken reports whether another employee already holds this email
func (r *EmployeeRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// PhoneTaken reports whether another employee already holds this phone number
func (r *EmployeeRepository) PhoneTaken(phone string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("phone = ? AND id <> ?", phone, excludeID).
		Count(&count).Error
	return count > 0, err
}
