package admin

import (
	"fmt"
	"strings"

	"cati-backend/internal/auth"
	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID uint   `json:"role_id"`
	Role   string `json:"role"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
}

type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	RoleID *uint   `json:"role_id"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params(name), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" geçersiz")
	}
	return id, nil
}

func userToResponse(u models.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		RoleID: u.RoleID,
		Role:   u.Role.Name,
	}
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Preload("Role").Order("id asc").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar listelenemedi")
		}

		res := make([]UserResponse, 0, len(users))
		for _, u := range users {
			res = append(res, userToResponse(u))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/users
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" || body.Password == "" || body.RoleID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email, şifre ve role_id zorunlu")
		}
		if len(body.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "Şifre en az 8 karakter olmalı")
		}

		var role models.Role
		if err := database.DB.First(&role, "id = ?", body.RoleID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rol bulunamadı")
		}

		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email ile kayıtlı bir kullanıcı zaten var")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		u := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			RoleID:       role.ID,
		}

		if err := database.DB.Create(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		u.Role = role
		return c.Status(fiber.StatusCreated).JSON(userToResponse(u))
	}
}

// PUT /api/admin/users/:id
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var u models.User
		if err := database.DB.Preload("Role").First(&u, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "İsim boş olamaz")
			}
			u.Name = name
		}
		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Email boş olamaz")
			}
			var exist models.User
			if err := database.DB.Where("email = ? AND id <> ?", email, u.ID).First(&exist).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bu email başka bir kullanıcıda kayıtlı")
			}
			u.Email = email
		}
		if body.RoleID != nil {
			var role models.Role
			if err := database.DB.First(&role, "id = ?", *body.RoleID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Rol bulunamadı")
			}

			// Son super admin'in rolü düşürülemez
			if u.Role.Name == models.RoleSuperAdmin && role.Name != models.RoleSuperAdmin {
				var count int64
				database.DB.Model(&models.User{}).Where("role_id = ?", u.RoleID).Count(&count)
				if count <= 1 {
					return fiber.NewError(fiber.StatusBadRequest, "Son super admin'in rolü değiştirilemez")
				}
			}

			u.RoleID = role.ID
			u.Role = role
		}

		if err := database.DB.Save(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı güncellenemedi")
		}

		return c.JSON(userToResponse(u))
	}
}

// POST /api/admin/users/:id/reset-password
func ResetUserPasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var u models.User
		if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		var body ResetPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		if len(body.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "Şifre en az 8 karakter olmalı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		if err := database.DB.Model(&u).Update("password_hash", string(hash)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre güncellenemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// DELETE /api/admin/users/:id
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		// Kendi hesabını silmeyi engelle
		if actorID, ok := c.Locals(auth.CtxUserIDKey).(uint); ok && actorID == id {
			return fiber.NewError(fiber.StatusBadRequest, "Kendi hesabını silemezsin")
		}

		var u models.User
		if err := database.DB.Preload("Role").First(&u, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		// Son super admin silinemez
		if u.Role.Name == models.RoleSuperAdmin {
			var count int64
			database.DB.Model(&models.User{}).Where("role_id = ?", u.RoleID).Count(&count)
			if count <= 1 {
				return fiber.NewError(fiber.StatusBadRequest, "Son super admin silinemez")
			}
		}

		if err := database.DB.Delete(&models.User{}, "id = ?", u.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
