package repository

import (
	"time"

	"company-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// AccessTokenRepository handles database operations for access tokens
type AccessTokenRepository struct {
	db *gorm.DB
}

// NewAccessTokenRepository creates a new access token repository
func NewAccessTokenRepository(db *gorm.DB) *AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

// Create creates a new access token record
func (r *AccessTokenRepository) Create(token *models.AccessToken) error {
	return r.db.Create(token).Error
}

// GetByID retrieves an access token by ID. A missing row means the token
// was revoked.
func (r *AccessTokenRepository) GetByID(id uint) (*models.AccessToken, error) {
	var token models.AccessToken
	err := r.db.First(&token, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Delete revokes a single token, leaving the user's other sessions intact
func (r *AccessTokenRepository) Delete(id uint) error {
	return r.db.Delete(&models.AccessToken{}, "id = ?", id).Error
}

// Touch records when a token was last presented
func (r *AccessTokenRepository) Touch(id uint) error {
	now := time.Now()
	return r.db.Model(&models.AccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", &now).Error
}
