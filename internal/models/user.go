package models

import "time"

// User is the database row for an account.
type User struct {
	UserID             string     `json:"userID"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	PasswordHash       *string    `json:"-"`
	AuthProvider       string     `json:"authProvider"`
	RefreshTokenHash   *string    `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
	DeletedAt          *time.Time `json:"deletedAt"`
	AuditFields
}
