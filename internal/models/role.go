package models

import "time"

const (
	RoleSuperAdmin = "super_admin"
	RoleEditor     = "editor"
)

type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;not null;uniqueIndex"`
	IsSystem  bool   `gorm:"not null;default:false"` // super_admin ve editor silinemez
	CreatedAt time.Time
	UpdatedAt time.Time

	Users []User
}
