package models

import "time"

// Admin roles. Every admin row carries exactly one of these.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Admin represents an administrative account. The password hash is a
// PHC-formatted argon2id string and is never serialized.
type Admin struct {
	ID           string    `gorm:"size:64;primaryKey" json:"id"`
	Username     string    `gorm:"size:128;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:hashed_password;size:256;not null" json:"-"`
	Role         string    `gorm:"size:32;not null;default:admin" json:"role"`
	Email        string    `gorm:"size:160" json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the legacy table name.
func (Admin) TableName() string {
	return "admins"
}
