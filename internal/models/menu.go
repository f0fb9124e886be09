package models

import "time"

// MenuItem: Admin panelindeki bir menü girdisi
// Key frontend'de route eşleşmesi için kullanılır (örn: "products", "sliders")
type MenuItem struct {
	ID         uint   `gorm:"primaryKey"`
	Key        string `gorm:"size:50;not null;uniqueIndex"`
	Title      string `gorm:"size:100;not null"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RoleMenu: Rol -> menü yetki ataması (junction tablosu)
type RoleMenu struct {
	ID         uint `gorm:"primaryKey"`
	RoleID     uint `gorm:"index;not null;uniqueIndex:idx_role_menu"`
	MenuItemID uint `gorm:"not null;uniqueIndex:idx_role_menu"`
}
