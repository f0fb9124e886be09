package projects

import (
	"fmt"
	"strings"

	"cati-backend/internal/audit"
	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProjectResponse struct {
	ID                uint   `json:"id"`
	ProjectCategoryID uint   `json:"project_category_id"`
	Title             string `json:"title"`
	Location          string `json:"location"`
	Description       string `json:"description"`
	ImagePath         string `json:"image_path"`
	OrderIndex        int    `json:"order_index"`
}

type CreateProjectRequest struct {
	ProjectCategoryID uint   `json:"project_category_id"`
	Title             string `json:"title"`
	Location          string `json:"location"`
	Description       string `json:"description"`
	ImagePath         string `json:"image_path"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	ImagePath   *string `json:"image_path"`
}

func projectToResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		ProjectCategoryID: p.ProjectCategoryID,
		Title:             p.Title,
		Location:          p.Location,
		Description:       p.Description,
		ImagePath:         p.ImagePath,
		OrderIndex:        p.OrderIndex,
	}
}

// Projelerin sıralama kapsamı kategoridir
func categoryScope(categoryID uint) ordering.Scope {
	return func(q *gorm.DB) *gorm.DB { return q.Where("project_category_id = ?", categoryID) }
}

func requireUintQuery(c *fiber.Ctx, name string) (uint, error) {
	s := c.Query(name)
	if s == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" zorunlu")
	}
	var v uint
	if _, err := fmt.Sscan(s, &v); err != nil || v == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" geçersiz")
	}
	return v, nil
}

// GET /api/admin/projects?project_category_id=1 (kategori filtresi opsiyonel)
func ListProjectsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Order("order_index asc")
		if s := c.Query("project_category_id"); s != "" {
			var categoryID uint
			if _, err := fmt.Sscan(s, &categoryID); err != nil || categoryID == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "project_category_id geçersiz")
			}
			query = query.Where("project_category_id = ?", categoryID)
		}

		var list []models.Project
		if err := query.Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Projeler listelenemedi")
		}

		res := make([]ProjectResponse, 0, len(list))
		for _, p := range list {
			res = append(res, projectToResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/admin/projects/:id
func GetProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var p models.Project
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proje bulunamadı")
		}

		return c.JSON(projectToResponse(p))
	}
}

// POST /api/admin/projects
func CreateProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" || body.ProjectCategoryID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Title ve project_category_id zorunlu")
		}

		var cat models.ProjectCategory
		if err := database.DB.First(&cat, "id = ?", body.ProjectCategoryID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
		}

		next, err := ordering.NextIndex(database.DB, "projects", categoryScope(cat.ID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje oluşturulamadı")
		}

		p := models.Project{
			ProjectCategoryID: cat.ID,
			Title:             body.Title,
			Location:          strings.TrimSpace(body.Location),
			Description:       body.Description,
			ImagePath:         strings.TrimSpace(body.ImagePath),
			OrderIndex:        next,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje oluşturulamadı")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "project",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "Proje oluşturuldu: " + p.Title,
			After:       p,
		})

		return c.Status(fiber.StatusCreated).JSON(projectToResponse(p))
	}
}

// PUT /api/admin/projects/:id
func UpdateProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var p models.Project
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proje bulunamadı")
		}
		before := p

		var body UpdateProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
			}
			p.Title = title
		}
		if body.Location != nil {
			p.Location = strings.TrimSpace(*body.Location)
		}
		if body.Description != nil {
			p.Description = *body.Description
		}
		if body.ImagePath != nil {
			p.ImagePath = strings.TrimSpace(*body.ImagePath)
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje güncellenemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "project",
			EntityID:    p.ID,
			Action:      models.AuditActionUpdate,
			Description: "Proje güncellendi: " + p.Title,
			Before:      before,
			After:       p,
		})

		return c.JSON(projectToResponse(p))
	}
}

// DELETE /api/admin/projects/:id
func DeleteProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var p models.Project
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proje bulunamadı")
		}

		if err := database.DB.Delete(&models.Project{}, "id = ?", p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje silinemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "project",
			EntityID:    p.ID,
			Action:      models.AuditActionDelete,
			Description: "Proje silindi: " + p.Title,
			After:       p,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/projects/reorder?project_category_id=1
func ReorderProjectsHandler() fiber.Handler {
	return ordering.ReorderHandler("projects", func(c *fiber.Ctx) (ordering.Scope, error) {
		categoryID, err := requireUintQuery(c, "project_category_id")
		if err != nil {
			return nil, err
		}
		return categoryScope(categoryID), nil
	})
}
