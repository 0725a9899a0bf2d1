package models

import (
	"time"
)

// Role constants, ascending privilege.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash
	FullName   string    `gorm:"size:100" json:"full_name"`
	Bio        string    `gorm:"size:500" json:"bio"`
	Location   string    `gorm:"size:100" json:"location"`
	Website    string    `gorm:"size:200" json:"website"`
	AvatarURL  string    `json:"avatar_url"`
	Reputation int       `gorm:"default:0" json:"reputation"`
	Role       string    `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsModerator reports whether the user holds moderator privileges or higher.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether s is one of the three known roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleModerator || s == RoleAdmin
}
