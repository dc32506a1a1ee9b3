// Package model defines database models
package model

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID string `gorm:"primaryKey" json:"id"`
	// Stored lowercased so uniqueness is case-insensitive
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	Role         string     `gorm:"default:student" json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	Files     []File     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Questions []Question `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Answers   []Answer   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns the fields safe to hand back to clients. The password
// hash never leaves the server
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"email":     u.Email,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"role":      u.Role,
	}
}
