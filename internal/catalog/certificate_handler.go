package catalog

import (
	"strings"

	"cati-backend/internal/audit"
	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CertificateResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
}

type CreateCertificateRequest struct {
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
}

type UpdateCertificateRequest struct {
	Title     *string `json:"title"`
	ImagePath *string `json:"image_path"`
}

// GET /api/admin/certificates
func ListCertificatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var certs []models.Certificate
		if err := database.DB.Order("title asc").Find(&certs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sertifikalar listelenemedi")
		}

		res := make([]CertificateResponse, 0, len(certs))
		for _, cert := range certs {
			res = append(res, CertificateResponse{ID: cert.ID, Title: cert.Title, ImagePath: cert.ImagePath})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/certificates
func CreateCertificateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCertificateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
		}

		cert := models.Certificate{
			Title:     body.Title,
			ImagePath: strings.TrimSpace(body.ImagePath),
		}

		if err := database.DB.Create(&cert).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sertifika oluşturulamadı")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "certificate",
			EntityID:    cert.ID,
			Action:      models.AuditActionCreate,
			Description: "Sertifika oluşturuldu: " + cert.Title,
			After:       cert,
		})

		return c.Status(fiber.StatusCreated).JSON(CertificateResponse{ID: cert.ID, Title: cert.Title, ImagePath: cert.ImagePath})
	}
}

// PUT /api/admin/certificates/:id
func UpdateCertificateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cert models.Certificate
		if err := database.DB.First(&cert, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sertifika bulunamadı")
		}
		before := cert

		var body UpdateCertificateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
			}
			cert.Title = title
		}
		if body.ImagePath != nil {
			cert.ImagePath = strings.TrimSpace(*body.ImagePath)
		}

		if err := database.DB.Save(&cert).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sertifika güncellenemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "certificate",
			EntityID:    cert.ID,
			Action:      models.AuditActionUpdate,
			Description: "Sertifika güncellendi: " + cert.Title,
			Before:      before,
			After:       cert,
		})

		return c.JSON(CertificateResponse{ID: cert.ID, Title: cert.Title, ImagePath: cert.ImagePath})
	}
}

// DELETE /api/admin/certificates/:id
// Sertifika silinince junction satırları da temizlenir
func DeleteCertificateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var cert models.Certificate
		if err := database.DB.First(&cert, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sertifika bulunamadı")
		}

		database.DB.Delete(&models.ProductCertificate{}, "certificate_id = ?", id)
		database.DB.Delete(&models.ProfileCertificate{}, "certificate_id = ?", id)

		if err := database.DB.Delete(&models.Certificate{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sertifika silinemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "certificate",
			EntityID:    cert.ID,
			Action:      models.AuditActionDelete,
			Description: "Sertifika silindi: " + cert.Title,
			After:       cert,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
