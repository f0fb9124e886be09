package auth

import (
	"strings"

	"cati-backend/internal/config"
	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterSuperAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterSuperAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterSuperAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		var role models.Role
		if err := database.DB.Where("name = ?", models.RoleSuperAdmin).First(&role).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Super admin rolü bulunamadı")
		}

		// Zaten super admin varsa ikinciyi engelle
		var count int64
		database.DB.Model(&models.User{}).
			Where("role_id = ?", role.ID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "Zaten bir super admin var")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			RoleID:       role.ID,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  role.Name,
		})
	}
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Preload("Role").Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role.Name,
			},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)
		roleVal := c.Locals(CtxRoleNameKey)

		// Kullanıcı bilgilerini veritabanından çek
		var user models.User
		if userID, ok := userIDVal.(uint); ok {
			if err := database.DB.Preload("Role").First(&user, userID).Error; err == nil {
				return c.JSON(fiber.Map{
					"user_id": user.ID,
					"name":    user.Name,
					"email":   user.Email,
					"role":    user.Role.Name,
				})
			}
		}

		// Fallback: Eğer veritabanından çekilemezse locals'dan döndür
		return c.JSON(fiber.Map{
			"user_id": userIDVal,
			"role":    roleVal,
		})
	}
}

// GET /api/auth/menus
// Oturumdaki rol için menü yetki kümesini döndürür: {menuKey: true/false}.
// Frontend menüyü bu kümeye göre filtreler; küme oturum başına bir kez
// çözülür ve route kurulumuna açıkça taşınır (global state yok).
func MenusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxRoleNameKey)
		roleName, ok := roleVal.(string)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
		}

		var menus []models.MenuItem
		if err := database.DB.Order("order_index asc").Find(&menus).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menüler okunamadı")
		}

		allowed := make(map[uint]bool)
		if roleName != models.RoleSuperAdmin {
			roleIDVal := c.Locals(CtxRoleIDKey)
			roleID, ok := roleIDVal.(uint)
			if !ok {
				return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
			}

			var assigned []models.RoleMenu
			if err := database.DB.Where("role_id = ?", roleID).Find(&assigned).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Menü yetkileri okunamadı")
			}
			for _, a := range assigned {
				allowed[a.MenuItemID] = true
			}
		}

		capabilities := make(map[string]bool, len(menus))
		items := make([]fiber.Map, 0, len(menus))
		for _, m := range menus {
			ok := roleName == models.RoleSuperAdmin || allowed[m.ID]
			capabilities[m.Key] = ok
			if ok {
				items = append(items, fiber.Map{
					"key":         m.Key,
					"title":       m.Title,
					"order_index": m.OrderIndex,
				})
			}
		}

		return c.JSON(fiber.Map{
			"capabilities": capabilities,
			"items":        items,
		})
	}
}
