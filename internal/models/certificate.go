package models

import "time"

type Certificate struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:100;not null"`
	ImagePath string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Badge struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:100;not null"`
	Icon      string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
