package models

import "time"

// Contact: İletişim ve konum bilgileri. Tek satır tutulur (singleton)
type Contact struct {
	ID        uint   `gorm:"primaryKey"`
	Address   string `gorm:"size:500"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:100"`
	MapEmbed  string `gorm:"type:text"` // Google Maps embed kodu
	Instagram string `gorm:"size:255"`
	Facebook  string `gorm:"size:255"`
	Youtube   string `gorm:"size:255"`
	Linkedin  string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
