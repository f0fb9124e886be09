package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Brand{},
		&models.Product{},
		&models.Certificate{},
		&models.Badge{},
		&models.ProductCertificate{},
		&models.ProductBadge{},
		&models.ProductProfile{},
		&models.ProductCategory{},
		&models.PremiumSpec{},
		&models.AuditLog{},
		&models.User{},
	))
	database.DB = db
}

func newAssignApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Beklenmeyen sunucu hatası"})
		},
	})

	app.Post("/products", CreateProductHandler())
	app.Get("/products/:id", GetProductHandler())
	app.Put("/products/:id/certificates", AssignProductCertificatesHandler())
	app.Put("/products/:id/badges", AssignProductBadgesHandler())
	app.Delete("/products/:id", DeleteProductHandler())
	return app
}

func putJSON(t *testing.T, app *fiber.App, target string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest("PUT", target, &buf)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func seedProductWithCerts(t *testing.T) (models.Product, []models.Certificate) {
	t.Helper()

	brand := models.Brand{Name: "Marka"}
	require.NoError(t, database.DB.Create(&brand).Error)

	p := models.Product{BrandID: brand.ID, Name: "Kiremit", Slug: "kiremit"}
	require.NoError(t, database.DB.Create(&p).Error)

	certs := make([]models.Certificate, 3)
	for i := range certs {
		certs[i] = models.Certificate{Title: "Sertifika", ImagePath: "/uploads/c.png"}
		require.NoError(t, database.DB.Create(&certs[i]).Error)
	}
	return p, certs
}

func TestAssignCertificatesFullReplace(t *testing.T) {
	setupTestDB(t)
	app := newAssignApp(t)
	p, certs := seedProductWithCerts(t)

	// İlk atama
	res := putJSON(t, app, "/products/1/certificates", fiber.Map{
		"ids": []uint{certs[0].ID, certs[1].ID},
	})
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		IDs []uint `json:"ids"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.ElementsMatch(t, []uint{certs[0].ID, certs[1].ID}, body.IDs)

	// İkinci atama öncekinin tamamının yerine geçer, birleşmez
	res = putJSON(t, app, "/products/1/certificates", fiber.Map{
		"ids": []uint{certs[1].ID, certs[2].ID},
	})
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.ElementsMatch(t, []uint{certs[1].ID, certs[2].ID}, body.IDs)

	var count int64
	require.NoError(t, database.DB.Model(&models.ProductCertificate{}).
		Where("product_id = ?", p.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAssignEmptySetClearsAll(t *testing.T) {
	setupTestDB(t)
	app := newAssignApp(t)
	p, certs := seedProductWithCerts(t)

	res := putJSON(t, app, "/products/1/certificates", fiber.Map{
		"ids": []uint{certs[0].ID, certs[1].ID},
	})
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = putJSON(t, app, "/products/1/certificates", fiber.Map{"ids": []uint{}})
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, database.DB.Model(&models.ProductCertificate{}).
		Where("product_id = ?", p.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAssignToUnknownProductReturns404(t *testing.T) {
	setupTestDB(t)
	app := newAssignApp(t)

	res := putJSON(t, app, "/products/99/certificates", fiber.Map{"ids": []uint{1}})
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestDeleteProductBlockedWhileChildrenExist(t *testing.T) {
	setupTestDB(t)
	app := newAssignApp(t)
	p, certs := seedProductWithCerts(t)

	res := putJSON(t, app, "/products/1/certificates", fiber.Map{
		"ids": []uint{certs[0].ID, certs[1].ID},
	})
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	profile := models.ProductProfile{ProductID: p.ID, Name: "Profil"}
	require.NoError(t, database.DB.Create(&profile).Error)
	category := models.ProductCategory{ProductID: p.ID, Name: "Kategori"}
	require.NoError(t, database.DB.Create(&category).Error)

	// Bağlı profil varken silme reddedilir, hiçbir şey temizlenmez
	res, err := app.Test(httptest.NewRequest("DELETE", "/products/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	var certCount int64
	require.NoError(t, database.DB.Model(&models.ProductCertificate{}).
		Where("product_id = ?", p.ID).Count(&certCount).Error)
	assert.EqualValues(t, 2, certCount)

	// Profil gitti ama kategori duruyor: hala reddedilir
	require.NoError(t, database.DB.Delete(&models.ProductProfile{}, profile.ID).Error)
	res, err = app.Test(httptest.NewRequest("DELETE", "/products/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	// Alt kayıtlar temizlenince silme geçer ve atamalar da gider
	require.NoError(t, database.DB.Delete(&models.ProductCategory{}, category.ID).Error)
	res, err = app.Test(httptest.NewRequest("DELETE", "/products/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, res.StatusCode)

	var productCount int64
	require.NoError(t, database.DB.Model(&models.Product{}).Count(&productCount).Error)
	assert.Zero(t, productCount)

	require.NoError(t, database.DB.Model(&models.ProductCertificate{}).
		Where("product_id = ?", p.ID).Count(&certCount).Error)
	assert.Zero(t, certCount)
}

func TestCreateProductWithAssignments(t *testing.T) {
	setupTestDB(t)
	app := newAssignApp(t)
	_, certs := seedProductWithCerts(t)

	// Create akışı: ürün satırı insert edildikten sonra atamalar senkronize edilir
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(fiber.Map{
		"brand_id":        1,
		"name":            "Mahya",
		"certificate_ids": []uint{certs[0].ID, certs[2].ID},
	}))
	req := httptest.NewRequest("POST", "/products", &buf)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	var created ProductResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	assert.ElementsMatch(t, []uint{certs[0].ID, certs[2].ID}, created.CertificateIDs)
	assert.Empty(t, created.BadgeIDs)
}
