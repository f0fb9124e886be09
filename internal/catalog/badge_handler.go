package catalog

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type BadgeResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type CreateBadgeRequest struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type UpdateBadgeRequest struct {
	Title *string `json:"title"`
	Icon  *string `json:"icon"`
}

// GET /api/admin/badges
func ListBadgesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var badges []models.Badge
		if err := database.DB.Order("title asc").Find(&badges).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rozetler listelenemedi")
		}

		res := make([]BadgeResponse, 0, len(badges))
		for _, b := range badges {
			res = append(res, BadgeResponse{ID: b.ID, Title: b.Title, Icon: b.Icon})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/badges
func CreateBadgeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBadgeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
		}

		b := models.Badge{
			Title: body.Title,
			Icon:  strings.TrimSpace(body.Icon),
		}

		if err := database.DB.Create(&b).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rozet oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(BadgeResponse{ID: b.ID, Title: b.Title, Icon: b.Icon})
	}
}

// PUT /api/admin/badges/:id
func UpdateBadgeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var b models.Badge
		if err := database.DB.First(&b, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rozet bulunamadı")
		}

		var body UpdateBadgeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
			}
			b.Title = title
		}
		if body.Icon != nil {
			b.Icon = strings.TrimSpace(*body.Icon)
		}

		if err := database.DB.Save(&b).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rozet güncellenemedi")
		}

		return c.JSON(BadgeResponse{ID: b.ID, Title: b.Title, Icon: b.Icon})
	}
}

// DELETE /api/admin/badges/:id
func DeleteBadgeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		database.DB.Delete(&models.ProductBadge{}, "badge_id = ?", id)
		database.DB.Delete(&models.ProfileBadge{}, "badge_id = ?", id)

		if err := database.DB.Delete(&models.Badge{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rozet silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
