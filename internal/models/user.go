package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a marketplace account. The password hash is never serialized.
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email    string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password string    `gorm:"size:255;not null" json:"-"`
	Role     string    `gorm:"size:20;default:'user'" json:"role"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
}
