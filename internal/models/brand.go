package models

import "time"

type Brand struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null;unique"`
	LogoPath   string `gorm:"size:255"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Products []Product
}
