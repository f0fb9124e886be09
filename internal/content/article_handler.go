package content

import (
	"strings"
	"time"

	"cati-backend/internal/audit"
	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/slug"

	"github.com/gofiber/fiber/v2"
)

type ArticleResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Summary     string  `json:"summary"`
	Body        string  `json:"body"`
	ImagePath   string  `json:"image_path"`
	IsActive    bool    `json:"is_active"`
	PublishedAt *string `json:"published_at"`
	CreatedAt   string  `json:"created_at"`
}

type CreateArticleRequest struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	ImagePath string `json:"image_path"`
}

type UpdateArticleRequest struct {
	Title     *string `json:"title"`
	Summary   *string `json:"summary"`
	Body      *string `json:"body"`
	ImagePath *string `json:"image_path"`
}

func articleToResponse(a models.Article) ArticleResponse {
	res := ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Summary:   a.Summary,
		Body:      a.Body,
		ImagePath: a.ImagePath,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if a.PublishedAt != nil {
		s := a.PublishedAt.Format("2006-01-02 15:04:05")
		res.PublishedAt = &s
	}
	return res
}

// GET /api/admin/articles
func ListArticlesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var articles []models.Article
		if err := database.DB.Order("created_at desc").Find(&articles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Makaleler listelenemedi")
		}

		res := make([]ArticleResponse, 0, len(articles))
		for _, a := range articles {
			res = append(res, articleToResponse(a))
		}
		return c.JSON(res)
	}
}

// GET /api/articles (public: sadece yayında olanlar)
func ListPublishedArticlesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var articles []models.Article
		if err := database.DB.Where("is_active = ?", true).Order("published_at desc").Find(&articles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Makaleler listelenemedi")
		}

		res := make([]ArticleResponse, 0, len(articles))
		for _, a := range articles {
			res = append(res, articleToResponse(a))
		}
		return c.JSON(res)
	}
}

// GET /api/articles/:slug (public)
func GetArticleBySlugHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		articleSlug := c.Params("slug")

		var a models.Article
		if err := database.DB.Where("slug = ? AND is_active = ?", articleSlug, true).First(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Makale bulunamadı")
		}

		return c.JSON(articleToResponse(a))
	}
}

// POST /api/admin/articles
func CreateArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateArticleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
		}

		articleSlug := slug.Make(body.Title)
		var exist models.Article
		if err := database.DB.Where("slug = ?", articleSlug).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu başlıkta bir makale zaten var")
		}

		a := models.Article{
			Title:     body.Title,
			Slug:      articleSlug,
			Summary:   strings.TrimSpace(body.Summary),
			Body:      body.Body,
			ImagePath: strings.TrimSpace(body.ImagePath),
			IsActive:  false, // Yeni makale taslak olarak başlar
		}

		if err := database.DB.Create(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Makale oluşturulamadı")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "article",
			EntityID:    a.ID,
			Action:      models.AuditActionCreate,
			Description: "Makale oluşturuldu: " + a.Title,
			After:       a,
		})

		return c.Status(fiber.StatusCreated).JSON(articleToResponse(a))
	}
}

// PUT /api/admin/articles/:id
func UpdateArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var a models.Article
		if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Makale bulunamadı")
		}
		before := a

		var body UpdateArticleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title boş olamaz")
			}
			a.Title = title
			a.Slug = slug.Make(title)
		}
		if body.Summary != nil {
			a.Summary = strings.TrimSpace(*body.Summary)
		}
		if body.Body != nil {
			a.Body = *body.Body
		}
		if body.ImagePath != nil {
			a.ImagePath = strings.TrimSpace(*body.ImagePath)
		}

		if err := database.DB.Save(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Makale güncellenemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "article",
			EntityID:    a.ID,
			Action:      models.AuditActionUpdate,
			Description: "Makale güncellendi: " + a.Title,
			Before:      before,
			After:       a,
		})

		return c.JSON(articleToResponse(a))
	}
}

// POST /api/admin/articles/:id/publish
func PublishArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var a models.Article
		if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Makale bulunamadı")
		}

		now := time.Now()
		a.IsActive = true
		if a.PublishedAt == nil {
			a.PublishedAt = &now
		}

		if err := database.DB.Save(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Makale yayınlanamadı")
		}

		return c.JSON(articleToResponse(a))
	}
}

// POST /api/admin/articles/:id/unpublish
func UnpublishArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var a models.Article
		if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Makale bulunamadı")
		}

		a.IsActive = false

		if err := database.DB.Save(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Makale yayından kaldırılamadı")
		}

		return c.JSON(articleToResponse(a))
	}
}

// DELETE /api/admin/articles/:id
func DeleteArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var a models.Article
		if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Makale bulunamadı")
		}

		if err := database.DB.Delete(&models.Article{}, "id = ?", a.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Makale silinemedi")
		}

		userID, userName := audit.ActorFromCtx(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "article",
			EntityID:    a.ID,
			Action:      models.AuditActionDelete,
			Description: "Makale silindi: " + a.Title,
			After:       a,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
