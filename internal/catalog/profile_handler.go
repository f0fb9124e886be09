package catalog

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"
	"cati-backend/internal/relations"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfileResponse struct {
	ID             uint   `json:"id"`
	ProductID      uint   `json:"product_id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	ImagePath      string `json:"image_path"`
	OrderIndex     int    `json:"order_index"`
	CertificateIDs []uint `json:"certificate_ids"`
	BadgeIDs       []uint `json:"badge_ids"`
}

type CreateProfileRequest struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	ImagePath string `json:"image_path"`
	// Create akışı: owner satırı insert edildikten sonra senkronize edilir
	CertificateIDs []uint `json:"certificate_ids"`
	BadgeIDs       []uint `json:"badge_ids"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Code      *string `json:"code"`
	ImagePath *string `json:"image_path"`
}

func profileToResponse(p models.ProductProfile) (ProfileResponse, error) {
	certIDs, err := relations.RelatedIDs(database.DB, relations.ProfileCertificates, p.ID)
	if err != nil {
		return ProfileResponse{}, err
	}
	badgeIDs, err := relations.RelatedIDs(database.DB, relations.ProfileBadges, p.ID)
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		ID:             p.ID,
		ProductID:      p.ProductID,
		Name:           p.Name,
		Code:           p.Code,
		ImagePath:      p.ImagePath,
		OrderIndex:     p.OrderIndex,
		CertificateIDs: certIDs,
		BadgeIDs:       badgeIDs,
	}, nil
}

func productScope(productID uint) ordering.Scope {
	return func(q *gorm.DB) *gorm.DB { return q.Where("product_id = ?", productID) }
}

// GET /api/admin/profiles?product_id=1
func ListProfilesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := requireUintQuery(c, "product_id")
		if err != nil {
			return err
		}

		var profiles []models.ProductProfile
		if err := database.DB.Where("product_id = ?", productID).Order("order_index asc").Find(&profiles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profiller listelenemedi")
		}

		res := make([]ProfileResponse, 0, len(profiles))
		for _, p := range profiles {
			item, err := profileToResponse(p)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Profiller listelenemedi")
			}
			res = append(res, item)
		}
		return c.JSON(res)
	}
}

// POST /api/admin/profiles
func CreateProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProfileRequest
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

		next, err := ordering.NextIndex(database.DB, "product_profiles", productScope(body.ProductID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil oluşturulamadı")
		}

		p := models.ProductProfile{
			ProductID:  body.ProductID,
			Name:       body.Name,
			Code:       strings.TrimSpace(body.Code),
			ImagePath:  strings.TrimSpace(body.ImagePath),
			OrderIndex: next,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil oluşturulamadı")
		}

		if len(body.CertificateIDs) > 0 {
			if err := relations.Sync(database.DB, relations.ProfileCertificates, p.ID, body.CertificateIDs); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sertifika ataması kaydedilemedi")
			}
		}
		if len(body.BadgeIDs) > 0 {
			if err := relations.Sync(database.DB, relations.ProfileBadges, p.ID, body.BadgeIDs); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rozet ataması kaydedilemedi")
			}
		}

		res, err := profileToResponse(p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil okunamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// PUT /api/admin/profiles/:id
func UpdateProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.ProductProfile
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Profil bulunamadı")
		}

		var body UpdateProfileRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			p.Name = name
		}
		if body.Code != nil {
			p.Code = strings.TrimSpace(*body.Code)
		}
		if body.ImagePath != nil {
			p.ImagePath = strings.TrimSpace(*body.ImagePath)
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil güncellenemedi")
		}

		res, err := profileToResponse(p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil okunamadı")
		}
		return c.JSON(res)
	}
}

// DELETE /api/admin/profiles/:id
func DeleteProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var p models.ProductProfile
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Profil bulunamadı")
		}

		// Atamaları ve profile bağlı kategorileri temizle
		if err := relations.Sync(database.DB, relations.ProfileCertificates, p.ID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil silinemedi")
		}
		if err := relations.Sync(database.DB, relations.ProfileBadges, p.ID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil silinemedi")
		}

		var categoryCount int64
		database.DB.Model(&models.ProductCategory{}).Where("profile_id = ?", p.ID).Count(&categoryCount)
		if categoryCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu profile bağlı kategoriler var, önce onları silin")
		}

		if err := database.DB.Delete(&models.ProductProfile{}, "id = ?", p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/profiles/reorder?product_id=1
func ReorderProfilesHandler() fiber.Handler {
	return ordering.ReorderHandler("product_profiles", func(c *fiber.Ctx) (ordering.Scope, error) {
		productID, err := requireUintQuery(c, "product_id")
		if err != nil {
			return nil, err
		}
		return productScope(productID), nil
	})
}

// PUT /api/admin/profiles/:id/certificates
func AssignProfileCertificatesHandler() fiber.Handler {
	return profileAssignHandler(relations.ProfileCertificates, "Sertifika")
}

// PUT /api/admin/profiles/:id/badges
func AssignProfileBadgesHandler() fiber.Handler {
	return profileAssignHandler(relations.ProfileBadges, "Rozet")
}

func profileAssignHandler(j relations.Junction, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		// Owner var mı? (senkronizasyonun ön koşulu)
		var p models.ProductProfile
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Profil bulunamadı")
		}

		var body AssignRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if err := relations.Sync(database.DB, j, p.ID, body.IDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, label+" ataması kaydedilemedi")
		}

		ids, err := relations.RelatedIDs(database.DB, j, p.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, label+" ataması okunamadı")
		}
		return c.JSON(fiber.Map{"ids": ids})
	}
}
