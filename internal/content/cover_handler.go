package content

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoverResponse struct {
	ID         uint   `json:"id"`
	PageKey    string `json:"page_key"`
	Title      string `json:"title"`
	ImagePath  string `json:"image_path"`
	OrderIndex int    `json:"order_index"`
}

type CreateCoverRequest struct {
	PageKey   string `json:"page_key"`
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
}

type UpdateCoverRequest struct {
	Title     *string `json:"title"`
	ImagePath *string `json:"image_path"`
}

func coverToResponse(cv models.Cover) CoverResponse {
	return CoverResponse{
		ID:         cv.ID,
		PageKey:    cv.PageKey,
		Title:      cv.Title,
		ImagePath:  cv.ImagePath,
		OrderIndex: cv.OrderIndex,
	}
}

// Kapakların sıralama kapsamı sayfadır
func pageScope(pageKey string) ordering.Scope {
	return func(q *gorm.DB) *gorm.DB { return q.Where("page_key = ?", pageKey) }
}

// GET /api/admin/covers?page_key=products
func ListCoversHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageKey := strings.TrimSpace(c.Query("page_key"))
		if pageKey == "" {
			return fiber.NewError(fiber.StatusBadRequest, "page_key zorunlu")
		}

		var covers []models.Cover
		if err := database.DB.Where("page_key = ?", pageKey).Order("order_index asc").Find(&covers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kapaklar listelenemedi")
		}

		res := make([]CoverResponse, 0, len(covers))
		for _, cv := range covers {
			res = append(res, coverToResponse(cv))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/covers
func CreateCoverHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCoverRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.PageKey = strings.TrimSpace(body.PageKey)
		body.ImagePath = strings.TrimSpace(body.ImagePath)
		if body.PageKey == "" || body.ImagePath == "" {
			return fiber.NewError(fiber.StatusBadRequest, "page_key ve image_path zorunlu")
		}

		next, err := ordering.NextIndex(database.DB, "covers", pageScope(body.PageKey))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kapak oluşturulamadı")
		}

		cv := models.Cover{
			PageKey:    body.PageKey,
			Title:      strings.TrimSpace(body.Title),
			ImagePath:  body.ImagePath,
			OrderIndex: next,
		}

		if err := database.DB.Create(&cv).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kapak oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(coverToResponse(cv))
	}
}

// PUT /api/admin/covers/:id
func UpdateCoverHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cv models.Cover
		if err := database.DB.First(&cv, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kapak bulunamadı")
		}

		var body UpdateCoverRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			cv.Title = strings.TrimSpace(*body.Title)
		}
		if body.ImagePath != nil {
			imagePath := strings.TrimSpace(*body.ImagePath)
			if imagePath == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Image path boş olamaz")
			}
			cv.ImagePath = imagePath
		}

		if err := database.DB.Save(&cv).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kapak güncellenemedi")
		}

		return c.JSON(coverToResponse(cv))
	}
}

// DELETE /api/admin/covers/:id
func DeleteCoverHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Cover{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kapak silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/covers/reorder?page_key=products
func ReorderCoversHandler() fiber.Handler {
	return ordering.ReorderHandler("covers", func(c *fiber.Ctx) (ordering.Scope, error) {
		pageKey := strings.TrimSpace(c.Query("page_key"))
		if pageKey == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "page_key zorunlu")
		}
		return pageScope(pageKey), nil
	})
}
