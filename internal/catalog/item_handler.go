package catalog

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemResponse struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	ImagePath  string `json:"image_path"`
	OrderIndex int    `json:"order_index"`
}

type CreateItemRequest struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	ImagePath  string `json:"image_path"`
}

type UpdateItemRequest struct {
	Name      *string `json:"name"`
	Code      *string `json:"code"`
	ImagePath *string `json:"image_path"`
}

func itemToResponse(it models.ProductItem) ItemResponse {
	return ItemResponse{
		ID:         it.ID,
		CategoryID: it.CategoryID,
		Name:       it.Name,
		Code:       it.Code,
		ImagePath:  it.ImagePath,
		OrderIndex: it.OrderIndex,
	}
}

func categoryItemsScope(categoryID uint) ordering.Scope {
	return func(q *gorm.DB) *gorm.DB { return q.Where("category_id = ?", categoryID) }
}

// GET /api/admin/items?category_id=1
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID, err := requireUintQuery(c, "category_id")
		if err != nil {
			return err
		}

		var items []models.ProductItem
		if err := database.DB.Where("category_id = ?", categoryID).Order("order_index asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kalemler listelenemedi")
		}

		res := make([]ItemResponse, 0, len(items))
		for _, it := range items {
			res = append(res, itemToResponse(it))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/items
func CreateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.CategoryID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve category_id zorunlu")
		}

		var cat models.ProductCategory
		if err := database.DB.First(&cat, "id = ?", body.CategoryID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
		}

		next, err := ordering.NextIndex(database.DB, "product_items", categoryItemsScope(body.CategoryID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kalem oluşturulamadı")
		}

		it := models.ProductItem{
			CategoryID: body.CategoryID,
			Name:       body.Name,
			Code:       strings.TrimSpace(body.Code),
			ImagePath:  strings.TrimSpace(body.ImagePath),
			OrderIndex: next,
		}

		if err := database.DB.Create(&it).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kalem oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(itemToResponse(it))
	}
}

// PUT /api/admin/items/:id
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var it models.ProductItem
		if err := database.DB.First(&it, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kalem bulunamadı")
		}

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			it.Name = name
		}
		if body.Code != nil {
			it.Code = strings.TrimSpace(*body.Code)
		}
		if body.ImagePath != nil {
			it.ImagePath = strings.TrimSpace(*body.ImagePath)
		}

		if err := database.DB.Save(&it).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kalem güncellenemedi")
		}

		return c.JSON(itemToResponse(it))
	}
}

// DELETE /api/admin/items/:id
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.ProductItem{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kalem silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/items/reorder?category_id=1
func ReorderItemsHandler() fiber.Handler {
	return ordering.ReorderHandler("product_items", func(c *fiber.Ctx) (ordering.Scope, error) {
		categoryID, err := requireUintQuery(c, "category_id")
		if err != nil {
			return nil, err
		}
		return categoryItemsScope(categoryID), nil
	})
}
