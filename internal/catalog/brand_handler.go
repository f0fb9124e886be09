package catalog

import (
	"strings"

	"cati-backend/internal/audit"
	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
)

type BrandResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	LogoPath   string `json:"logo_path"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  string `json:"created_at"`
}

type CreateBrandRequest struct {
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"` // Opsiyonel, medya kütüphanesinden seçilir
}

type UpdateBrandRequest struct {
	Name     *string `json:"name"`
	LogoPath *string `json:"logo_path"`
}

func brandToResponse(b models.Brand) BrandResponse {
	return BrandResponse{
		ID:         b.ID,
		Name:       b.Name,
		LogoPath:   b.LogoPath,
		OrderIndex: b.OrderIndex,
		CreatedAt:  b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/admin/brands
func ListBrandsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var brands []models.Brand
		if err := database.DB.Order("order_index asc").Find(&brands).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Markalar listelenemedi")
		}

		res := make([]BrandResponse, 0, len(brands))
		for _, b := range brands {
			res = append(res, brandToResponse(b))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/brands
func CreateBrandHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBrandRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Marka adı boş olamaz")
		}

		var exist models.Brand
		if err := database.DB.Where("name = ?", body.Name).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu marka zaten kayıtlı")
		}

		// Yeni marka listenin sonuna eklenir
		next, err := ordering.NextIndex(database.DB, "brands", nil)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Marka oluşturulamadı")
		}

		brand := models.Brand{
			Name:       body.Name,
			LogoPath:   strings.TrimSpace(body.LogoPath),
			OrderIndex: next,
		}

		if err := database.DB.Create(&brand).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Marka oluşturulamadı")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "brand",
			EntityID:    brand.ID,
			Action:      models.AuditActionCreate,
			Description: "Marka oluşturuldu: " + brand.Name,
			After:       brand,
		})

		return c.Status(fiber.StatusCreated).JSON(brandToResponse(brand))
	}
}

// PUT /api/admin/brands/:id
func UpdateBrandHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var brand models.Brand
		if err := database.DB.First(&brand, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Marka bulunamadı")
		}
		before := brand

		var body UpdateBrandRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Marka adı boş olamaz")
			}
			brand.Name = name
		}

		if body.LogoPath != nil {
			brand.LogoPath = strings.TrimSpace(*body.LogoPath)
		}

		if err := database.DB.Save(&brand).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Marka güncellenemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "brand",
			EntityID:    brand.ID,
			Action:      models.AuditActionUpdate,
			Description: "Marka güncellendi: " + brand.Name,
			Before:      before,
			After:       brand,
		})

		return c.JSON(brandToResponse(brand))
	}
}

// DELETE /api/admin/brands/:id
func DeleteBrandHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var brand models.Brand
		if err := database.DB.First(&brand, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Marka bulunamadı")
		}

		// Bağlı ürün varsa silme
		var productCount int64
		database.DB.Model(&models.Product{}).Where("brand_id = ?", id).Count(&productCount)
		if productCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu markaya bağlı ürünler var, önce onları silin")
		}

		if err := database.DB.Delete(&models.Brand{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Marka silinemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "brand",
			EntityID:    brand.ID,
			Action:      models.AuditActionDelete,
			Description: "Marka silindi: " + brand.Name,
			After:       brand,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/brands/reorder
// Markalar tek global kapsamda sıralanır
func ReorderBrandsHandler() fiber.Handler {
	return ordering.ReorderHandler("brands", nil)
}
