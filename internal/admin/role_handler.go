package admin

import (
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/relations"

	"github.com/gofiber/fiber/v2"
)

type RoleResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	IsSystem bool   `json:"is_system"`
	MenuIDs  []uint `json:"menu_ids"`
}

type CreateRoleRequest struct {
	Name string `json:"name"`
}

type AssignMenusRequest struct {
	MenuIDs []uint `json:"menu_ids"`
}

func roleToResponse(r models.Role) (RoleResponse, error) {
	menuIDs, err := relations.RelatedIDs(database.DB, relations.RoleMenus, r.ID)
	if err != nil {
		return RoleResponse{}, err
	}
	return RoleResponse{ID: r.ID, Name: r.Name, IsSystem: r.IsSystem, MenuIDs: menuIDs}, nil
}

// GET /api/admin/roles
func ListRolesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var roles []models.Role
		if err := database.DB.Order("id asc").Find(&roles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Roller listelenemedi")
		}

		res := make([]RoleResponse, 0, len(roles))
		for _, r := range roles {
			rr, err := roleToResponse(r)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rol yetkileri okunamadı")
			}
			res = append(res, rr)
		}
		return c.JSON(res)
	}
}

// POST /api/admin/roles
func CreateRoleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRoleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(strings.ToLower(body.Name))
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Rol adı boş olamaz")
		}

		var exist models.Role
		if err := database.DB.Where("name = ?", body.Name).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu isimde bir rol zaten var")
		}

		r := models.Role{Name: body.Name}
		if err := database.DB.Create(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rol oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(RoleResponse{ID: r.ID, Name: r.Name, MenuIDs: []uint{}})
	}
}

// PUT /api/admin/roles/:id/menus
// Rolün menü yetki kümesini verilen kümeyle tam olarak değiştirir
func AssignRoleMenusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var r models.Role
		if err := database.DB.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rol bulunamadı")
		}

		var body AssignMenusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		for _, menuID := range body.MenuIDs {
			var m models.MenuItem
			if err := database.DB.First(&m, "id = ?", menuID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Menü bulunamadı")
			}
		}

		if err := relations.Sync(database.DB, relations.RoleMenus, r.ID, body.MenuIDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü yetkileri güncellenemedi")
		}

		menuIDs, err := relations.RelatedIDs(database.DB, relations.RoleMenus, r.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü yetkileri okunamadı")
		}

		return c.JSON(fiber.Map{"menu_ids": menuIDs})
	}
}

// DELETE /api/admin/roles/:id
func DeleteRoleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var r models.Role
		if err := database.DB.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rol bulunamadı")
		}

		if r.IsSystem {
			return fiber.NewError(fiber.StatusBadRequest, "Sistem rolleri silinemez")
		}

		var count int64
		if err := database.DB.Model(&models.User{}).Where("role_id = ?", r.ID).Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rol silinemedi")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu role atanmış kullanıcılar var")
		}

		if err := relations.Sync(database.DB, relations.RoleMenus, r.ID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rol yetkileri temizlenemedi")
		}

		if err := database.DB.Delete(&models.Role{}, "id = ?", r.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rol silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
