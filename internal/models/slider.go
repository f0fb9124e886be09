package models

import "time"

type Slider struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:150;not null"`
	Subtitle   string `gorm:"size:255"`
	ImagePath  string `gorm:"size:255;not null"`
	Link       string `gorm:"size:255"`
	// default tag yok: gorm default'lu kolonlarda zero value'yu (false)
	// insert'ten atlar, değer her create'te açıkça verilir
	IsActive   bool `gorm:"not null"`
	OrderIndex int  `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Cover: Sayfa üstü kapak görseli. Sıralama kapsamı page_key'dir
type Cover struct {
	ID         uint   `gorm:"primaryKey"`
	PageKey    string `gorm:"size:50;not null;index"` // örn: "products", "projects", "about"
	Title      string `gorm:"size:150"`
	ImagePath  string `gorm:"size:255;not null"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
