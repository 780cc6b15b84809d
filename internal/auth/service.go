package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Claims are the JWT claims carried by an issued bearer token. TokenID points
// at the access_tokens row backing this session; the row's absence means the
// token was revoked, regardless of the signature still being valid.
type Claims struct {
	UserID  uint `json:"user_id"`
	TokenID uint `json:"token_id"`
	jwt.RegisteredClaims
}

// Service issues, validates, and revokes bearer tokens
type Service struct {
	secret []byte
	ttl    time.Duration
	users  *repository.UserRepository
	tokens *repository.AccessTokenRepository
}

// NewService creates a new token service
func NewService(secret string, ttl time.Duration, users *repository.UserRepository, tokens *repository.AccessTokenRepository) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		users:  users,
		tokens: tokens,
	}
}

// IssueToken creates a new bearer token for the user: one access-token row
// plus a signed JWT referencing it.
func (s *Service) IssueToken(user *models.User, name string) (string, error) {
	record := &models.AccessToken{
		UserID: user.ID,
		Name:   name,
	}
	if err := s.tokens.Create(record); err != nil {
		return "", fmt.Errorf("failed to create access token: %w", err)
	}

	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		TokenID: record.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.FormatUint(uint64(record.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Authenticate resolves a presented bearer token to its user and backing
// token row. Revoked, expired, or tampered tokens fail with an
// AuthenticationError.
func (s *Service) Authenticate(tokenString string) (*models.User, uint, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, 0, apperrors.ErrInvalidToken
	}

	record, err := s.tokens.GetByID(claims.TokenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Revoked
			return nil, 0, apperrors.ErrInvalidToken
		}
		return nil, 0, fmt.Errorf("failed to look up access token: %w", err)
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.ErrInvalidToken
		}
		return nil, 0, fmt.Errorf("failed to look up user: %w", err)
	}

	_ = s.tokens.Touch(record.ID)

	return user, record.ID, nil
}

// RevokeToken deletes a single token row. Only the session behind that token
// is ended; the user's other tokens keep working.
func (s *Service) RevokeToken(tokenID uint) error {
	return s.tokens.Delete(tokenID)
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
