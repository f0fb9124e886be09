package catalog

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
)

type PremiumSpecResponse struct {
	ID         uint   `json:"id"`
	ProductID  uint   `json:"product_id"`
	Title      string `json:"title"`
	Value      string `json:"value"`
	Icon       string `json:"icon"`
	OrderIndex int    `json:"order_index"`
}

type CreatePremiumSpecRequest struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	Value     string `json:"value"`
	Icon      string `json:"icon"`
}

type UpdatePremiumSpecRequest struct {
	Title *string `json:"title"`
	Value *string `json:"value"`
	Icon  *string `json:"icon"`
}

func specToResponse(s models.PremiumSpec) PremiumSpecResponse {
	return PremiumSpecResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Title:      s.Title,
		Value:      s.Value,
		Icon:       s.Icon,
		OrderIndex: s.OrderIndex,
	}
}

// GET /api/admin/premium-specs?product_id=1
func ListPremiumSpecsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := requireUintQuery(c, "product_id")
		if err != nil {
			return err
		}

		var specs []models.PremiumSpec
		if err := database.DB.Where("product_id = ?", productID).Order("order_index asc").Find(&specs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özellikler listelenemedi")
		}

		res := make([]PremiumSpecResponse, 0, len(specs))
		for _, s := range specs {
			res = append(res, specToResponse(s))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/premium-specs
func CreatePremiumSpecHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePremiumSpecRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" || body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Title ve product_id zorunlu")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}
		if !product.IsPremium {
			return fiber.NewError(fiber.StatusBadRequest, "Özellik listesi sadece premium ürünlere eklenebilir")
		}

		next, err := ordering.NextIndex(database.DB, "premium_specs", productScope(body.ProductID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özellik oluşturulamadı")
		}

		s := models.PremiumSpec{
			ProductID:  body.ProductID,
			Title:      body.Title,
			Value:      strings.TrimSpace(body.Value),
			Icon:       strings.TrimSpace(body.Icon),
			OrderIndex: next,
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özellik oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(specToResponse(s))
	}
}

// PUT /api/admin/premium-specs/:id
func UpdatePremiumSpecHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.PremiumSpec
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Özellik bulunamadı")
		}

		var body UpdatePremiumSpecRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
			}
			s.Title = title
		}
		if body.Value != nil {
			s.Value = strings.TrimSpace(*body.Value)
		}
		if body.Icon != nil {
			s.Icon = strings.TrimSpace(*body.Icon)
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özellik güncellenemedi")
		}

		return c.JSON(specToResponse(s))
	}
}

// DELETE /api/admin/premium-specs/:id
func DeletePremiumSpecHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.PremiumSpec{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özellik silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/premium-specs/reorder?product_id=1
func ReorderPremiumSpecsHandler() fiber.Handler {
	return ordering.ReorderHandler("premium_specs", func(c *fiber.Ctx) (ordering.Scope, error) {
		productID, err := requireUintQuery(c, "product_id")
		if err != nil {
			return nil, err
		}
		return productScope(productID), nil
	})
}
