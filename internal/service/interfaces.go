package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for the auth service
type AuthServiceInterface interface {
	Login(req *LoginRequest) (*LoginResult, error)
	Logout(tokenID uint) error
}

// CompanyServiceInterface defines the interface for the company service
type CompanyServiceInterface interface {
	List() ([]CompanyResponse, error)
	Create(ctx context.Context, req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(id uint) (*CompanyResponse, error)
	Update(ctx context.Context, id uint, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(ctx context.Context, id uint) error
}

// EmployeeServiceInterface defines the interface for the employee service
type EmployeeServiceInterface interface {
	List() ([]EmployeeResponse, error)
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uint) (*EmployeeResponse, error)
	Update(id uint, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uint) error
}
