package models

import "time"

type Article struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:150;not null"`
	Slug        string `gorm:"size:170;not null;uniqueIndex"`
	Summary     string `gorm:"size:500"`
	Body        string `gorm:"type:text"`
	ImagePath   string `gorm:"size:255"`
	IsActive    bool   `gorm:"not null;default:false"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
