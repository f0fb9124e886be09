package models

import "time"

// ProductProfile: Bir ürünün profil varyantı (örn: trapez form, kiremit desen)
type ProductProfile struct {
	ID         uint   `gorm:"primaryKey"`
	ProductID  uint   `gorm:"index;not null"`
	Product    Product
	Name       string `gorm:"size:100;not null"`
	Code       string `gorm:"size:50"`
	ImagePath  string `gorm:"size:255"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfileCertificate: Profil -> sertifika ataması (junction tablosu)
type ProfileCertificate struct {
	ID               uint `gorm:"primaryKey"`
	ProductProfileID uint `gorm:"index;not null;uniqueIndex:idx_profile_certificate"`
	CertificateID    uint `gorm:"not null;uniqueIndex:idx_profile_certificate"`
}

// ProfileBadge: Profil -> rozet ataması (junction tablosu)
type ProfileBadge struct {
	ID               uint `gorm:"primaryKey"`
	ProductProfileID uint `gorm:"index;not null;uniqueIndex:idx_profile_badge"`
	BadgeID          uint `gorm:"not null;uniqueIndex:idx_profile_badge"`
}
