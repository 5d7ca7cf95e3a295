package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values for User.Role.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered user. Users are created on first authenticated
// contact and are never hard-deleted; email is the natural key used everywhere.
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name        string    `json:"name" gorm:"size:255"`
	PhotoURL    string    `json:"photo_url,omitempty" gorm:"size:512"`
	Verified    bool      `json:"verified"`
	Role        string    `json:"role" gorm:"size:50;default:'member';index"`
	LastLoginIP string    `json:"last_login_ip,omitempty" gorm:"size:64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
