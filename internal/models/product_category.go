package models

import "time"

// ProductCategory: Ürün altındaki kategori. ProfileID doluysa kategori o profile özeldir,
// boşsa doğrudan ürünün altındadır. Sıralama kapsamı (product_id, profile_id) ikilisidir.
type ProductCategory struct {
	ID         uint  `gorm:"primaryKey"`
	ProductID  uint  `gorm:"index;not null"`
	Product    Product
	ProfileID  *uint `gorm:"index"`
	Profile    *ProductProfile `gorm:"foreignKey:ProfileID"`
	Name       string `gorm:"size:100;not null"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []ProductItem `gorm:"foreignKey:CategoryID"`
}
