package auth

import (
	"fmt"
	"strings"

	"cati-backend/internal/config"
	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey   = "user_id"
	CtxRoleIDKey   = "role_id"
	CtxRoleNameKey = "role_name"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header eksik")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization formatı 'Bearer <token>' olmalı")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("geçersiz imzalama yöntemi")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token çözümlenemedi")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxRoleIDKey, claims.RoleID)
		c.Locals(CtxRoleNameKey, claims.RoleName)

		return c.Next()
	}
}

func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxRoleNameKey)
		role, ok := roleVal.(string)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
	}
}

// RequireMenu: İlgili menü yetkisi olmayan rolleri engeller.
// super_admin her menüye erişir; diğer roller için role_menus tablosuna bakılır.
// Yetki kümesi login sonrası /auth/menus ile frontend'e de verilir,
// burada aynı kontrol sunucu tarafında zorlanır.
func RequireMenu(menuKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxRoleNameKey)
		role, ok := roleVal.(string)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
		}
		if role == models.RoleSuperAdmin {
			return c.Next()
		}

		roleIDVal := c.Locals(CtxRoleIDKey)
		roleID, ok := roleIDVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
		}

		var count int64
		err := database.DB.Model(&models.RoleMenu{}).
			Joins("JOIN menu_items ON menu_items.id = role_menus.menu_item_id").
			Where("role_menus.role_id = ? AND menu_items.key = ?", roleID, menuKey).
			Count(&count).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yetki kontrolü yapılamadı")
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusForbidden, "Bu menü için yetkiniz yok")
		}

		return c.Next()
	}
}
