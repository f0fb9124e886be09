package catalog

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryResponse struct {
	ID         uint   `json:"id"`
	ProductID  uint   `json:"product_id"`
	ProfileID  *uint  `json:"profile_id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
}

type CreateCategoryRequest struct {
	ProductID uint   `json:"product_id"`
	ProfileID *uint  `json:"profile_id"` // Opsiyonel: doluysa kategori profile özel
	Name      string `json:"name"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

func categoryToResponse(cat models.ProductCategory) CategoryResponse {
	return CategoryResponse{
		ID:         cat.ID,
		ProductID:  cat.ProductID,
		ProfileID:  cat.ProfileID,
		Name:       cat.Name,
		OrderIndex: cat.OrderIndex,
	}
}

// categoryScope: Kategorilerin sıralama kapsamı (product_id, profile_id)
// ikilisidir. profile_id boşsa kapsam "profile bağlı olmayan" kategorilerdir;
// bir profilin kategorileri reorder edilirken ürünün kök kategorileri
// etkilenmez (ve tersi).
func categoryScope(productID uint, profileID *uint) ordering.Scope {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("product_id = ?", productID)
		if profileID != nil {
			return q.Where("profile_id = ?", *profileID)
		}
		return q.Where("profile_id IS NULL")
	}
}

// GET /api/admin/categories?product_id=1&profile_id=2
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := requireUintQuery(c, "product_id")
		if err != nil {
			return err
		}
		profileID, err := optionalUintQuery(c, "profile_id")
		if err != nil {
			return err
		}

		dbq := database.DB.Model(&models.ProductCategory{}).Where("product_id = ?", productID)
		if profileID != nil {
			dbq = dbq.Where("profile_id = ?", *profileID)
		} else {
			dbq = dbq.Where("profile_id IS NULL")
		}

		var categories []models.ProductCategory
		if err := dbq.Order("order_index asc").Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategoriler listelenemedi")
		}

		res := make([]CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			res = append(res, categoryToResponse(cat))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/categories
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve product_id zorunlu")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		if body.ProfileID != nil {
			var profile models.ProductProfile
			if err := database.DB.First(&profile, "id = ? AND product_id = ?", *body.ProfileID, body.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Profil bulunamadı")
			}
		}

		next, err := ordering.NextIndex(database.DB, "product_categories", categoryScope(body.ProductID, body.ProfileID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori oluşturulamadı")
		}

		cat := models.ProductCategory{
			ProductID:  body.ProductID,
			ProfileID:  body.ProfileID,
			Name:       body.Name,
			OrderIndex: next,
		}

		if err := database.DB.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(categoryToResponse(cat))
	}
}

// PUT /api/admin/categories/:id
func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.ProductCategory
		if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
		}

		var body UpdateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			cat.Name = name
		}

		if err := database.DB.Save(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori güncellenemedi")
		}

		return c.JSON(categoryToResponse(cat))
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var itemCount int64
		database.DB.Model(&models.ProductItem{}).Where("category_id = ?", id).Count(&itemCount)
		if itemCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu kategoriye bağlı kalemler var, önce onları silin")
		}

		if err := database.DB.Delete(&models.ProductCategory{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/categories/reorder?product_id=1&profile_id=2
func ReorderCategoriesHandler() fiber.Handler {
	return ordering.ReorderHandler("product_categories", func(c *fiber.Ctx) (ordering.Scope, error) {
		productID, err := requireUintQuery(c, "product_id")
		if err != nil {
			return nil, err
		}
		profileID, err := optionalUintQuery(c, "profile_id")
		if err != nil {
			return nil, err
		}
		return categoryScope(productID, profileID), nil
	})
}
