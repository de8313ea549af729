package models

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model

	Name  string `json:"name" gorm:"size:191"`
	Email string `json:"email" gorm:"uniqueIndex;size:191"`

	// bcrypt hash, never serialized
	Password string `json:"-" gorm:"size:191"`

	Role   string `json:"role" gorm:"size:32;default:customer"`
	Active bool   `json:"active" gorm:"default:true"`
}
