package models

import "time"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindFile  MediaKind = "file"
)

// MediaFile: Yüklenen dosya/görsel kütüphanesi kaydı
type MediaFile struct {
	ID         uint      `gorm:"primaryKey"`
	FileName   string    `gorm:"size:255;not null"`             // Orijinal dosya adı
	StoredName string    `gorm:"size:255;not null;uniqueIndex"` // Diskteki benzersiz ad (uuid önekli)
	Path       string    `gorm:"size:255;not null"`
	MimeType   string    `gorm:"size:100"`
	SizeBytes  int64     `gorm:"not null;default:0"`
	Kind       MediaKind `gorm:"size:10;not null;index"`
	CreatedAt  time.Time
}
