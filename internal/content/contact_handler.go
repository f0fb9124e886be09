package content

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ContactResponse struct {
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	MapEmbed  string `json:"map_embed"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Youtube   string `json:"youtube"`
	Linkedin  string `json:"linkedin"`
}

type UpdateContactRequest struct {
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	MapEmbed  *string `json:"map_embed"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Youtube   *string `json:"youtube"`
	Linkedin  *string `json:"linkedin"`
}

func contactToResponse(ct models.Contact) ContactResponse {
	return ContactResponse{
		Address:   ct.Address,
		Phone:     ct.Phone,
		Email:     ct.Email,
		MapEmbed:  ct.MapEmbed,
		Instagram: ct.Instagram,
		Facebook:  ct.Facebook,
		Youtube:   ct.Youtube,
		Linkedin:  ct.Linkedin,
	}
}

// loadContact: Tek satır tutulur; kayıt yoksa boş olarak oluşturulur
func loadContact() (models.Contact, error) {
	var ct models.Contact
	if err := database.DB.First(&ct).Error; err == nil {
		return ct, nil
	}

	ct = models.Contact{}
	if err := database.DB.Create(&ct).Error; err != nil {
		return ct, err
	}
	return ct, nil
}

// GET /api/contact (public) ve GET /api/admin/contact
func GetContactHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ct, err := loadContact()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İletişim bilgileri okunamadı")
		}
		return c.JSON(contactToResponse(ct))
	}
}

// PUT /api/admin/contact
func UpdateContactHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ct, err := loadContact()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İletişim bilgileri okunamadı")
		}

		var body UpdateContactRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Address != nil {
			ct.Address = strings.TrimSpace(*body.Address)
		}
		if body.Phone != nil {
			ct.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Email != nil {
			ct.Email = strings.TrimSpace(strings.ToLower(*body.Email))
		}
		if body.MapEmbed != nil {
			ct.MapEmbed = *body.MapEmbed
		}
		if body.Instagram != nil {
			ct.Instagram = strings.TrimSpace(*body.Instagram)
		}
		if body.Facebook != nil {
			ct.Facebook = strings.TrimSpace(*body.Facebook)
		}
		if body.Youtube != nil {
			ct.Youtube = strings.TrimSpace(*body.Youtube)
		}
		if body.Linkedin != nil {
			ct.Linkedin = strings.TrimSpace(*body.Linkedin)
		}

		if err := database.DB.Save(&ct).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İletişim bilgileri güncellenemedi")
		}

		return c.JSON(contactToResponse(ct))
	}
}
