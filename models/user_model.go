package models

import "gorm.io/gorm"

// Roles a User can hold.
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

const defaultAvatar = "https://static.vecteezy.com/system/resources/thumbnails/008/442/086/small_2x/illustration-of-human-icon-user-symbol-icon-modern-design-on-blank-background-free-vector.jpg"

// User represents an account that logs in and places orders.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Avatar   string `json:"avatar"`
	Tel      string `json:"tel"`
	Role     string `json:"role" gorm:"not null;default:client"`
}

// UserPatch carries the profile fields an update supplies. Nil means
// "leave unchanged". A new password is rehashed before being stored.
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Avatar   *string `json:"avatar"`
	Tel      *string `json:"tel"`
}

// BeforeCreate fills the default avatar when none was supplied.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Avatar == "" {
		u.Avatar = defaultAvatar
	}
	if u.Role == "" {
		u.Role = RoleClient
	}
	return nil
}
