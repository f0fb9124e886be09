package catalog

import (
	"strings"

	"cati-backend/internal/audit"
	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"
	"cati-backend/internal/relations"
	"cati-backend/internal/slug"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductResponse struct {
	ID             uint   `json:"id"`
	BrandID        uint   `json:"brand_id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	ImagePath      string `json:"image_path"`
	IsPremium      bool   `json:"is_premium"`
	OrderIndex     int    `json:"order_index"`
	CertificateIDs []uint `json:"certificate_ids"`
	BadgeIDs       []uint `json:"badge_ids"`
}

type CreateProductRequest struct {
	BrandID     uint   `json:"brand_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
	IsPremium   bool   `json:"is_premium"`
	// Create akışında atamalar bellekte taşınır: önce ürün satırı insert
	// edilir, id belli olduktan sonra senkronizasyon çağrılır
	CertificateIDs []uint `json:"certificate_ids"`
	BadgeIDs       []uint `json:"badge_ids"`
}

type UpdateProductRequest struct {
	BrandID     *uint   `json:"brand_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImagePath   *string `json:"image_path"`
	IsPremium   *bool   `json:"is_premium"`
}

type AssignRequest struct {
	IDs []uint `json:"ids"` // İstenen kümenin tamamı, delta değil
}

func productToResponse(p models.Product) (ProductResponse, error) {
	certIDs, err := relations.RelatedIDs(database.DB, relations.ProductCertificates, p.ID)
	if err != nil {
		return ProductResponse{}, err
	}
	badgeIDs, err := relations.RelatedIDs(database.DB, relations.ProductBadges, p.ID)
	if err != nil {
		return ProductResponse{}, err
	}

	return ProductResponse{
		ID:             p.ID,
		BrandID:        p.BrandID,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		ImagePath:      p.ImagePath,
		IsPremium:      p.IsPremium,
		OrderIndex:     p.OrderIndex,
		CertificateIDs: certIDs,
		BadgeIDs:       badgeIDs,
	}, nil
}

func brandScope(brandID uint) ordering.Scope {
	return func(q *gorm.DB) *gorm.DB { return q.Where("brand_id = ?", brandID) }
}

// GET /api/admin/products?brand_id=1
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})

		brandID, err := optionalUintQuery(c, "brand_id")
		if err != nil {
			return err
		}
		if brandID != nil {
			dbq = dbq.Where("brand_id = ?", *brandID)
		}

		var products []models.Product
		if err := dbq.Order("order_index asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			item, err := productToResponse(p)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
			}
			res = append(res, item)
		}
		return c.JSON(res)
	}
}

// GET /api/admin/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		res, err := productToResponse(p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}
		return c.JSON(res)
	}
}

// POST /api/admin/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.BrandID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve brand_id zorunlu")
		}

		var brand models.Brand
		if err := database.DB.First(&brand, "id = ?", body.BrandID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Marka bulunamadı")
		}

		productSlug := slug.Make(body.Name)
		var exist models.Product
		if err := database.DB.Where("slug = ?", productSlug).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu isimde bir ürün zaten var")
		}

		// Yeni ürün marka kapsamında listenin sonuna eklenir
		next, err := ordering.NextIndex(database.DB, "products", brandScope(body.BrandID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		p := models.Product{
			BrandID:     body.BrandID,
			Name:        body.Name,
			Slug:        productSlug,
			Description: body.Description,
			ImagePath:   strings.TrimSpace(body.ImagePath),
			IsPremium:   body.IsPremium,
			OrderIndex:  next,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		// Owner satırı artık var: atamalar senkronize edilebilir
		if len(body.CertificateIDs) > 0 {
			if err := relations.Sync(database.DB, relations.ProductCertificates, p.ID, body.CertificateIDs); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sertifika ataması kaydedilemedi")
			}
		}
		if len(body.BadgeIDs) > 0 {
			if err := relations.Sync(database.DB, relations.ProductBadges, p.ID, body.BadgeIDs); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rozet ataması kaydedilemedi")
			}
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "Ürün oluşturuldu: " + p.Name,
			After:       p,
		})

		res, err := productToResponse(p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}
		before := p

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			p.Name = name
			p.Slug = slug.Make(name)
		}

		if body.BrandID != nil {
			var brand models.Brand
			if err := database.DB.First(&brand, "id = ?", *body.BrandID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Marka bulunamadı")
			}
			p.BrandID = *body.BrandID
		}

		if body.Description != nil {
			p.Description = *body.Description
		}
		if body.ImagePath != nil {
			p.ImagePath = strings.TrimSpace(*body.ImagePath)
		}
		if body.IsPremium != nil {
			p.IsPremium = *body.IsPremium
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionUpdate,
			Description: "Ürün güncellendi: " + p.Name,
			Before:      before,
			After:       p,
		})

		res, err := productToResponse(p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}
		return c.JSON(res)
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		// Bağlı profil veya kategori varsa silme
		var profileCount int64
		database.DB.Model(&models.ProductProfile{}).Where("product_id = ?", id).Count(&profileCount)
		if profileCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu ürüne bağlı profiller var, önce onları silin")
		}
		var categoryCount int64
		database.DB.Model(&models.ProductCategory{}).Where("product_id = ?", id).Count(&categoryCount)
		if categoryCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu ürüne bağlı kategoriler var, önce onları silin")
		}

		// Önce atamaları ve alt kayıtları temizle
		if err := relations.Sync(database.DB, relations.ProductCertificates, p.ID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		if err := relations.Sync(database.DB, relations.ProductBadges, p.ID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		database.DB.Delete(&models.PremiumSpec{}, "product_id = ?", p.ID)

		if err := database.DB.Delete(&models.Product{}, "id = ?", p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionDelete,
			Description: "Ürün silindi: " + p.Name,
			After:       p,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/products/reorder?brand_id=1
// Sıralama kapsamı markadır: başka markaların ürünleri etkilenmez
func ReorderProductsHandler() fiber.Handler {
	return ordering.ReorderHandler("products", func(c *fiber.Ctx) (ordering.Scope, error) {
		brandID, err := requireUintQuery(c, "brand_id")
		if err != nil {
			return nil, err
		}
		return brandScope(brandID), nil
	})
}

// PUT /api/admin/products/:id/certificates
// Gönderilen küme, mevcut atamaların tamamının yerine geçer
func AssignProductCertificatesHandler() fiber.Handler {
	return assignHandler(relations.ProductCertificates, "Sertifika")
}

// PUT /api/admin/products/:id/badges
func AssignProductBadgesHandler() fiber.Handler {
	return assignHandler(relations.ProductBadges, "Rozet")
}

// assignHandler: Ürün junction senkronizasyon endpoint'i üretir.
// Owner'ın var olması senkronizasyonun ön koşuludur, önce doğrulanır.
func assignHandler(j relations.Junction, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body AssignRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if err := relations.Sync(database.DB, j, p.ID, body.IDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, label+" ataması kaydedilemedi")
		}

		ids, err := relations.RelatedIDs(database.DB, j, p.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, label+" ataması okunamadı")
		}
		return c.JSON(fiber.Map{"ids": ids})
	}
}
