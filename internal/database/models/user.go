package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents an account that can authenticate against the API.
// Users are created by the seeder only; there is no registration endpoint.
type User struct {
	BaseModel
	Name     string `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null" validate:"required,email,max=255"`
	Password string `json:"-" gorm:"size:255;not null"`
	IsAdmin  bool   `json:"is_admin" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// SetPassword hashes the plaintext password with bcrypt and stores the hash
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
