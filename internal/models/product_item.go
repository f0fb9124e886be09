package models

import "time"

type ProductItem struct {
	ID         uint   `gorm:"primaryKey"`
	CategoryID uint   `gorm:"index;not null"`
	Category   ProductCategory `gorm:"foreignKey:CategoryID"`
	Name       string `gorm:"size:100;not null"`
	Code       string `gorm:"size:50"`
	ImagePath  string `gorm:"size:255"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
