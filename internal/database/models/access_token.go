package models

import (
	"time"
)

// AccessToken is the server-side record behind one issued bearer token.
// The signed token carries this row's ID; deleting the row revokes exactly
// that session and leaves the user's other tokens untouched.
type AccessToken struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	Name       string     `json:"name" gorm:"size:255;not null"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// TableName returns the table name for AccessToken
func (AccessToken) TableName() string {
	return "access_tokens"
}
