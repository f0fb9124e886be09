package admin

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
)

type MenuResponse struct {
	ID         uint   `json:"id"`
	Key        string `json:"key"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}

type CreateMenuRequest struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type UpdateMenuRequest struct {
	Title *string `json:"title"`
}

// GET /api/admin/menus
func ListMenusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var menus []models.MenuItem
		if err := database.DB.Order("order_index asc").Find(&menus).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menüler listelenemedi")
		}

		res := make([]MenuResponse, 0, len(menus))
		for _, m := range menus {
			res = append(res, MenuResponse{ID: m.ID, Key: m.Key, Title: m.Title, OrderIndex: m.OrderIndex})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/menus
func CreateMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Key = strings.TrimSpace(strings.ToLower(body.Key))
		body.Title = strings.TrimSpace(body.Title)
		if body.Key == "" || body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Key ve title zorunlu")
		}

		var exist models.MenuItem
		if err := database.DB.Where("key = ?", body.Key).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu key ile bir menü zaten var")
		}

		next, err := ordering.NextIndex(database.DB, "menu_items", nil)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü oluşturulamadı")
		}

		m := models.MenuItem{Key: body.Key, Title: body.Title, OrderIndex: next}
		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(MenuResponse{ID: m.ID, Key: m.Key, Title: m.Title, OrderIndex: m.OrderIndex})
	}
}

// PUT /api/admin/menus/:id
// Key değiştirilemez, frontend route eşleşmesi bozulur
func UpdateMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var m models.MenuItem
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü bulunamadı")
		}

		var body UpdateMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
			}
			m.Title = title
		}

		if err := database.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü güncellenemedi")
		}

		return c.JSON(MenuResponse{ID: m.ID, Key: m.Key, Title: m.Title, OrderIndex: m.OrderIndex})
	}
}

// DELETE /api/admin/menus/:id
func DeleteMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var m models.MenuItem
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü bulunamadı")
		}

		// Önce rol atamalarını temizle
		if err := database.DB.Where("menu_item_id = ?", m.ID).Delete(&models.RoleMenu{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü silinemedi")
		}

		if err := database.DB.Delete(&models.MenuItem{}, "id = ?", m.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/menus/reorder
func ReorderMenusHandler() fiber.Handler {
	return ordering.ReorderHandler("menu_items", nil)
}
