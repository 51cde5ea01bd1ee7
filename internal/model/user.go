package model

import "time"

// RoleType enumerates user roles.
type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

// User represents a registered marketplace user.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string    `json:"username" gorm:"size:255;not null"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
	Role         RoleType  `json:"role" gorm:"type:varchar(20);not null;default:'user';index"`
	PasswordHash string    `json:"-" gorm:"size:1024;not null"` // Never expose in JSON
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	IsSuperuser  bool      `json:"is_superuser" gorm:"not null;default:false"`
	IsVerified   bool      `json:"is_verified" gorm:"not null;default:false"`
}
