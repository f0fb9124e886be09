package main

import (
	"log"
	"strings"

	"cati-backend/internal/admin"
	"cati-backend/internal/audit"
	"cati-backend/internal/auth"
	"cati-backend/internal/catalog"
	"cati-backend/internal/config"
	"cati-backend/internal/content"
	"cati-backend/internal/database"
	"cati-backend/internal/media"
	"cati-backend/internal/models"
	"cati-backend/internal/projects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Yüklenen dosyalar statik servis edilir
	app.Static("/uploads", cfg.MediaPath)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Public site içeriği
	api.Get("/sliders", content.ListActiveSlidersHandler())
	api.Get("/articles", content.ListPublishedArticlesHandler())
	api.Get("/articles/:slug", content.GetArticleBySlugHandler())
	api.Get("/contact", content.GetContactHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Get("/auth/menus", auth.MenusHandler())

	adminRoutes := protected.Group("/admin")

	// Marka yönetimi
	brands := adminRoutes.Group("/brands", auth.RequireMenu("brands"))
	brands.Get("/", catalog.ListBrandsHandler())
	brands.Post("/", catalog.CreateBrandHandler())
	brands.Post("/reorder", catalog.ReorderBrandsHandler())
	brands.Put("/:id", catalog.UpdateBrandHandler())
	brands.Delete("/:id", catalog.DeleteBrandHandler())

	// Ürün yönetimi (profiller, kategoriler, satırlar ve premium özellikler dahil)
	products := adminRoutes.Group("/products", auth.RequireMenu("products"))
	products.Get("/", catalog.ListProductsHandler())
	products.Post("/", catalog.CreateProductHandler())
	products.Post("/import", catalog.ImportProductsHandler())
	products.Post("/reorder", catalog.ReorderProductsHandler())
	products.Get("/:id", catalog.GetProductHandler())
	products.Put("/:id", catalog.UpdateProductHandler())
	products.Delete("/:id", catalog.DeleteProductHandler())
	products.Put("/:id/certificates", catalog.AssignProductCertificatesHandler())
	products.Put("/:id/badges", catalog.AssignProductBadgesHandler())

	profiles := adminRoutes.Group("/profiles", auth.RequireMenu("products"))
	profiles.Get("/", catalog.ListProfilesHandler())
	profiles.Post("/", catalog.CreateProfileHandler())
	profiles.Post("/reorder", catalog.ReorderProfilesHandler())
	profiles.Put("/:id", catalog.UpdateProfileHandler())
	profiles.Delete("/:id", catalog.DeleteProfileHandler())
	profiles.Put("/:id/certificates", catalog.AssignProfileCertificatesHandler())
	profiles.Put("/:id/badges", catalog.AssignProfileBadgesHandler())

	categories := adminRoutes.Group("/categories", auth.RequireMenu("products"))
	categories.Get("/", catalog.ListCategoriesHandler())
	categories.Post("/", catalog.CreateCategoryHandler())
	categories.Post("/reorder", catalog.ReorderCategoriesHandler())
	categories.Put("/:id", catalog.UpdateCategoryHandler())
	categories.Delete("/:id", catalog.DeleteCategoryHandler())

	items := adminRoutes.Group("/items", auth.RequireMenu("products"))
	items.Get("/", catalog.ListItemsHandler())
	items.Post("/", catalog.CreateItemHandler())
	items.Post("/reorder", catalog.ReorderItemsHandler())
	items.Put("/:id", catalog.UpdateItemHandler())
	items.Delete("/:id", catalog.DeleteItemHandler())

	premiumSpecs := adminRoutes.Group("/premium-specs", auth.RequireMenu("products"))
	premiumSpecs.Get("/", catalog.ListPremiumSpecsHandler())
	premiumSpecs.Post("/", catalog.CreatePremiumSpecHandler())
	premiumSpecs.Post("/reorder", catalog.ReorderPremiumSpecsHandler())
	premiumSpecs.Put("/:id", catalog.UpdatePremiumSpecHandler())
	premiumSpecs.Delete("/:id", catalog.DeletePremiumSpecHandler())

	// Sertifika ve rozet yönetimi
	certificates := adminRoutes.Group("/certificates", auth.RequireMenu("certificates"))
	certificates.Get("/", catalog.ListCertificatesHandler())
	certificates.Post("/", catalog.CreateCertificateHandler())
	certificates.Put("/:id", catalog.UpdateCertificateHandler())
	certificates.Delete("/:id", catalog.DeleteCertificateHandler())

	badges := adminRoutes.Group("/badges", auth.RequireMenu("badges"))
	badges.Get("/", catalog.ListBadgesHandler())
	badges.Post("/", catalog.CreateBadgeHandler())
	badges.Put("/:id", catalog.UpdateBadgeHandler())
	badges.Delete("/:id", catalog.DeleteBadgeHandler())

	// Slider ve kapak yönetimi
	sliders := adminRoutes.Group("/sliders", auth.RequireMenu("sliders"))
	sliders.Get("/", content.ListSlidersHandler())
	sliders.Post("/", content.CreateSliderHandler())
	sliders.Post("/reorder", content.ReorderSlidersHandler())
	sliders.Put("/:id", content.UpdateSliderHandler())
	sliders.Delete("/:id", content.DeleteSliderHandler())

	covers := adminRoutes.Group("/covers", auth.RequireMenu("covers"))
	covers.Get("/", content.ListCoversHandler())
	covers.Post("/", content.CreateCoverHandler())
	covers.Post("/reorder", content.ReorderCoversHandler())
	covers.Put("/:id", content.UpdateCoverHandler())
	covers.Delete("/:id", content.DeleteCoverHandler())

	// Proje yönetimi
	projectCategories := adminRoutes.Group("/project-categories", auth.RequireMenu("projects"))
	projectCategories.Get("/", projects.ListCategoriesHandler())
	projectCategories.Post("/", projects.CreateCategoryHandler())
	projectCategories.Post("/reorder", projects.ReorderCategoriesHandler())
	projectCategories.Put("/:id", projects.UpdateCategoryHandler())
	projectCategories.Delete("/:id", projects.DeleteCategoryHandler())

	projectRoutes := adminRoutes.Group("/projects", auth.RequireMenu("projects"))
	projectRoutes.Get("/", projects.ListProjectsHandler())
	projectRoutes.Post("/", projects.CreateProjectHandler())
	projectRoutes.Post("/reorder", projects.ReorderProjectsHandler())
	projectRoutes.Get("/:id", projects.GetProjectHandler())
	projectRoutes.Put("/:id", projects.UpdateProjectHandler())
	projectRoutes.Delete("/:id", projects.DeleteProjectHandler())

	// Makale yönetimi
	articles := adminRoutes.Group("/articles", auth.RequireMenu("articles"))
	articles.Get("/", content.ListArticlesHandler())
	articles.Post("/", content.CreateArticleHandler())
	articles.Put("/:id", content.UpdateArticleHandler())
	articles.Post("/:id/publish", content.PublishArticleHandler())
	articles.Post("/:id/unpublish", content.UnpublishArticleHandler())
	articles.Delete("/:id", content.DeleteArticleHandler())

	// Dosya/görsel kütüphanesi
	mediaRoutes := adminRoutes.Group("/media", auth.RequireMenu("media"))
	mediaRoutes.Get("/", media.ListMediaHandler())
	mediaRoutes.Post("/", media.UploadMediaHandler(cfg))
	mediaRoutes.Delete("/:id", media.DeleteMediaHandler(cfg))

	// İletişim bilgileri
	contact := adminRoutes.Group("/contact", auth.RequireMenu("contact"))
	contact.Get("/", content.GetContactHandler())
	contact.Put("/", content.UpdateContactHandler())

	// Kullanıcı, rol ve menü yönetimi sadece super admin'e açık
	users := adminRoutes.Group("/users", auth.RequireRole(models.RoleSuperAdmin))
	users.Get("/", admin.ListUsersHandler())
	users.Post("/", admin.CreateUserHandler())
	users.Put("/:id", admin.UpdateUserHandler())
	users.Post("/:id/reset-password", admin.ResetUserPasswordHandler())
	users.Delete("/:id", admin.DeleteUserHandler())

	roles := adminRoutes.Group("/roles", auth.RequireRole(models.RoleSuperAdmin))
	roles.Get("/", admin.ListRolesHandler())
	roles.Post("/", admin.CreateRoleHandler())
	roles.Put("/:id/menus", admin.AssignRoleMenusHandler())
	roles.Delete("/:id", admin.DeleteRoleHandler())

	menus := adminRoutes.Group("/menus", auth.RequireRole(models.RoleSuperAdmin))
	menus.Get("/", admin.ListMenusHandler())
	menus.Post("/", admin.CreateMenuHandler())
	menus.Post("/reorder", admin.ReorderMenusHandler())
	menus.Put("/:id", admin.UpdateMenuHandler())
	menus.Delete("/:id", admin.DeleteMenuHandler())

	// Audit logs
	auditRoutes := adminRoutes.Group("/audit-logs", auth.RequireMenu("audit-logs"))
	auditRoutes.Get("/", audit.ListAuditLogsHandler())
	auditRoutes.Post("/:id/undo", audit.UndoAuditLogHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
