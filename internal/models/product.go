package models

import "time"

type Product struct {
	ID          uint   `gorm:"primaryKey"`
	BrandID     uint   `gorm:"index;not null"`
	Brand       Brand
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:120;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	ImagePath   string `gorm:"size:255"`
	IsPremium   bool   `gorm:"not null;default:false"` // Premium ürünlerde PremiumSpec listesi gösterilir
	OrderIndex  int    `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Profiles     []ProductProfile
	PremiumSpecs []PremiumSpec
}

// ProductCertificate: Ürün -> sertifika ataması (junction tablosu)
type ProductCertificate struct {
	ID            uint `gorm:"primaryKey"`
	ProductID     uint `gorm:"index;not null;uniqueIndex:idx_product_certificate"`
	CertificateID uint `gorm:"not null;uniqueIndex:idx_product_certificate"`
}

// ProductBadge: Ürün -> rozet ataması (junction tablosu)
type ProductBadge struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index;not null;uniqueIndex:idx_product_badge"`
	BadgeID   uint `gorm:"not null;uniqueIndex:idx_product_badge"`
}
