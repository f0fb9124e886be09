package models

import "time"

// PremiumSpec: Premium ürün detay sayfasında listelenen teknik özellik satırı
type PremiumSpec struct {
	ID         uint   `gorm:"primaryKey"`
	ProductID  uint   `gorm:"index;not null"`
	Title      string `gorm:"size:100;not null"`
	Value      string `gorm:"size:255"`
	Icon       string `gorm:"size:100"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
