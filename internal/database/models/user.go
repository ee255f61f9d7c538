package models

import "time"

// User represents an API user able to authenticate against the service
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
