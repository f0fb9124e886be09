package database

import (
	"log"

	"cati-backend/internal/config"
	"cati-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	if err := SeedDefaults(DB); err != nil {
		log.Fatalf("Varsayılan kayıtlar oluşturulamadı: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate: Tüm tabloları oluşturur/günceller. Testlerde sqlite ile de kullanılır
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.MenuItem{},
		&models.RoleMenu{},
		&models.Brand{},
		&models.Product{},
		&models.ProductProfile{},
		&models.ProductCategory{},
		&models.ProductItem{},
		&models.PremiumSpec{},
		&models.Certificate{},
		&models.Badge{},
		&models.ProductCertificate{},
		&models.ProductBadge{},
		&models.ProfileCertificate{},
		&models.ProfileBadge{},
		&models.Slider{},
		&models.Cover{},
		&models.ProjectCategory{},
		&models.Project{},
		&models.Article{},
		&models.Contact{},
		&models.MediaFile{},
		&models.AuditLog{},
	)
}

// SeedDefaults: Sistem rollerini ve admin menü girdilerini oluşturur (idempotent)
func SeedDefaults(db *gorm.DB) error {
	systemRoles := []string{models.RoleSuperAdmin, models.RoleEditor}
	for _, name := range systemRoles {
		var count int64
		db.Model(&models.Role{}).Where("name = ?", name).Count(&count)
		if count == 0 {
			if err := db.Create(&models.Role{Name: name, IsSystem: true}).Error; err != nil {
				return err
			}
		}
	}

	// Varsayılan menüler: key frontend route'larıyla eşleşir
	defaultMenus := []models.MenuItem{
		{Key: "brands", Title: "Markalar"},
		{Key: "products", Title: "Ürünler"},
		{Key: "certificates", Title: "Sertifikalar"},
		{Key: "badges", Title: "Rozetler"},
		{Key: "sliders", Title: "Slider"},
		{Key: "covers", Title: "Kapak Görselleri"},
		{Key: "projects", Title: "Projeler"},
		{Key: "articles", Title: "Makaleler"},
		{Key: "media", Title: "Medya Kütüphanesi"},
		{Key: "contact", Title: "İletişim"},
		{Key: "users", Title: "Kullanıcılar"},
		{Key: "audit-logs", Title: "İşlem Geçmişi"},
	}
	for i, m := range defaultMenus {
		var count int64
		db.Model(&models.MenuItem{}).Where("key = ?", m.Key).Count(&count)
		if count == 0 {
			m.OrderIndex = i
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
