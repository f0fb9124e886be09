package content

import (
	"strings"

	"cati-backend/internal/audit"
	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
)

type SliderResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImagePath  string `json:"image_path"`
	Link       string `json:"link"`
	IsActive   bool   `json:"is_active"`
	OrderIndex int    `json:"order_index"`
}

type CreateSliderRequest struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImagePath string `json:"image_path"`
	Link      string `json:"link"`
	IsActive  *bool  `json:"is_active"` // Verilmezse aktif başlar
}

type UpdateSliderRequest struct {
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	ImagePath *string `json:"image_path"`
	Link      *string `json:"link"`
	IsActive  *bool   `json:"is_active"`
}

func sliderToResponse(s models.Slider) SliderResponse {
	return SliderResponse{
		ID:         s.ID,
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		ImagePath:  s.ImagePath,
		Link:       s.Link,
		IsActive:   s.IsActive,
		OrderIndex: s.OrderIndex,
	}
}

// GET /api/admin/sliders
func ListSlidersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sliders []models.Slider
		if err := database.DB.Order("order_index asc").Find(&sliders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Slider'lar listelenemedi")
		}

		res := make([]SliderResponse, 0, len(sliders))
		for _, s := range sliders {
			res = append(res, sliderToResponse(s))
		}
		return c.JSON(res)
	}
}

// GET /api/sliders (public: sadece aktifler)
func ListActiveSlidersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sliders []models.Slider
		if err := database.DB.Where("is_active = ?", true).Order("order_index asc").Find(&sliders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Slider'lar listelenemedi")
		}

		res := make([]SliderResponse, 0, len(sliders))
		for _, s := range sliders {
			res = append(res, sliderToResponse(s))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/sliders
func CreateSliderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSliderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Title = strings.TrimSpace(body.Title)
		body.ImagePath = strings.TrimSpace(body.ImagePath)
		if body.Title == "" || body.ImagePath == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title ve image_path zorunlu")
		}

		// Yeni slider listenin sonuna eklenir
		next, err := ordering.NextIndex(database.DB, "sliders", nil)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Slider oluşturulamadı")
		}

		isActive := true
		if body.IsActive != nil {
			isActive = *body.IsActive
		}

		s := models.Slider{
			Title:      body.Title,
			Subtitle:   strings.TrimSpace(body.Subtitle),
			ImagePath:  body.ImagePath,
			Link:       strings.TrimSpace(body.Link),
			IsActive:   isActive,
			OrderIndex: next,
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Slider oluşturulamadı")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "slider",
			EntityID:    s.ID,
			Action:      models.AuditActionCreate,
			Description: "Slider oluşturuldu: " + s.Title,
			After:       s,
		})

		return c.Status(fiber.StatusCreated).JSON(sliderToResponse(s))
	}
}

// PUT /api/admin/sliders/:id
func UpdateSliderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.Slider
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Slider bulunamadı")
		}
		before := s

		var body UpdateSliderRequest
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
		if body.Subtitle != nil {
			s.Subtitle = strings.TrimSpace(*body.Subtitle)
		}
		if body.ImagePath != nil {
			imagePath := strings.TrimSpace(*body.ImagePath)
			if imagePath == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Image path boş olamaz")
			}
			s.ImagePath = imagePath
		}
		if body.Link != nil {
			s.Link = strings.TrimSpace(*body.Link)
		}
		if body.IsActive != nil {
			s.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Slider güncellenemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "slider",
			EntityID:    s.ID,
			Action:      models.AuditActionUpdate,
			Description: "Slider güncellendi: " + s.Title,
			Before:      before,
			After:       s,
		})

		return c.JSON(sliderToResponse(s))
	}
}

// DELETE /api/admin/sliders/:id
func DeleteSliderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.Slider
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Slider bulunamadı")
		}

		if err := database.DB.Delete(&models.Slider{}, "id = ?", s.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Slider silinemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "slider",
			EntityID:    s.ID,
			Action:      models.AuditActionDelete,
			Description: "Slider silindi: " + s.Title,
			After:       s,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/sliders/reorder
// Slider'lar tek global kapsamda sıralanır
func ReorderSlidersHandler() fiber.Handler {
	return ordering.ReorderHandler("sliders", nil)
}
