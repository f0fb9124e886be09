package models

import "time"

type ProjectCategory struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null;unique"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Projects []Project
}

type Project struct {
	ID                uint   `gorm:"primaryKey"`
	ProjectCategoryID uint   `gorm:"index;not null"`
	ProjectCategory   ProjectCategory
	Title             string `gorm:"size:150;not null"`
	Location          string `gorm:"size:150"`
	Description       string `gorm:"type:text"`
	ImagePath         string `gorm:"size:255"`
	OrderIndex        int    `gorm:"not null;default:0;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
