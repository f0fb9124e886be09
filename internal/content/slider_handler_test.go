package content

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

	require.NoError(t, db.AutoMigrate(&models.Slider{}, &models.AuditLog{}, &models.User{}))
	database.DB = db
}

func newSliderApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Beklenmeyen sunucu hatası"})
		},
	})

	app.Get("/sliders", ListSlidersHandler())
	app.Get("/sliders/active", ListActiveSlidersHandler())
	app.Post("/sliders", CreateSliderHandler())
	app.Post("/sliders/reorder", ReorderSlidersHandler())
	app.Put("/sliders/:id", UpdateSliderHandler())
	app.Delete("/sliders/:id", DeleteSliderHandler())
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, res *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
}

func TestSliderCRUDOverHTTP(t *testing.T) {
	setupTestDB(t)
	app := newSliderApp(t)

	// Create
	res, err := app.Test(jsonRequest(t, "POST", "/sliders", fiber.Map{
		"title":      "Kampanya",
		"image_path": "/uploads/kampanya.jpg",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	var created SliderResponse
	decodeBody(t, res, &created)
	assert.Equal(t, "Kampanya", created.Title)
	assert.Equal(t, 0, created.OrderIndex)
	assert.True(t, created.IsActive)

	// Update (kısmi: sadece is_active)
	res, err = app.Test(jsonRequest(t, "PUT", "/sliders/1", fiber.Map{
		"is_active": false,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var updated SliderResponse
	decodeBody(t, res, &updated)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Kampanya", updated.Title) // Diğer alanlar korunur

	// List
	res, err = app.Test(jsonRequest(t, "GET", "/sliders", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var list []SliderResponse
	decodeBody(t, res, &list)
	require.Len(t, list, 1)

	// Delete
	res, err = app.Test(jsonRequest(t, "DELETE", "/sliders/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, res.StatusCode)

	var count int64
	require.NoError(t, database.DB.Model(&models.Slider{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateSliderHonorsIsActive(t *testing.T) {
	setupTestDB(t)
	app := newSliderApp(t)

	// Pasif oluşturulan slider pasif kalmalı: insert'te false değeri
	// yutulursa kayıt aktif doğar ve public listeye sızar
	res, err := app.Test(jsonRequest(t, "POST", "/sliders", fiber.Map{
		"title":      "Taslak",
		"image_path": "/uploads/taslak.jpg",
		"is_active":  false,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	var created SliderResponse
	decodeBody(t, res, &created)
	assert.False(t, created.IsActive)

	var stored models.Slider
	require.NoError(t, database.DB.First(&stored, created.ID).Error)
	assert.False(t, stored.IsActive)

	// is_active gönderilmezse aktif başlar
	res, err = app.Test(jsonRequest(t, "POST", "/sliders", fiber.Map{
		"title":      "Yayında",
		"image_path": "/uploads/yayinda.jpg",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	// Public liste sadece aktifleri döner
	res, err = app.Test(jsonRequest(t, "GET", "/sliders/active", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var list []SliderResponse
	decodeBody(t, res, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Yayında", list[0].Title)
}

func TestCreateSliderValidation(t *testing.T) {
	setupTestDB(t)
	app := newSliderApp(t)

	res, err := app.Test(jsonRequest(t, "POST", "/sliders", fiber.Map{"title": "Eksik"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func seedSlidersHTTP(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, database.DB.Create(&models.Slider{
			Title:      "Slider",
			ImagePath:  "/uploads/s.jpg",
			IsActive:   true,
			OrderIndex: i,
		}).Error)
	}
}

type reorderResponse struct {
	Error string `json:"error"`
	Items []struct {
		ID         uint `json:"id"`
		OrderIndex int  `json:"order_index"`
	} `json:"items"`
}

func TestReorderSlidersEndpoint(t *testing.T) {
	setupTestDB(t)
	app := newSliderApp(t)
	seedSlidersHTTP(t, 3)

	res, err := app.Test(jsonRequest(t, "POST", "/sliders/reorder", fiber.Map{
		"source_index":      0,
		"destination_index": 2,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body reorderResponse
	decodeBody(t, res, &body)
	require.Len(t, body.Items, 3)

	// İlk kayıt sona taşındı, numaralar 0..N-1
	assert.Equal(t, uint(1), body.Items[2].ID)
	for i, item := range body.Items {
		assert.Equal(t, i, item.OrderIndex)
	}
}

func TestReorderWithoutDestinationReturnsCurrentList(t *testing.T) {
	setupTestDB(t)
	app := newSliderApp(t)
	seedSlidersHTTP(t, 3)

	res, err := app.Test(jsonRequest(t, "POST", "/sliders/reorder", fiber.Map{
		"source_index":      0,
		"destination_index": nil,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body reorderResponse
	decodeBody(t, res, &body)
	require.Len(t, body.Items, 3)
	assert.Equal(t, uint(1), body.Items[0].ID) // Sıra değişmedi
}

func TestReorderFailureReturnsServerTruth(t *testing.T) {
	setupTestDB(t)
	app := newSliderApp(t)
	seedSlidersHTTP(t, 3)

	// Bir satırın order update'ini patlat: endpoint 500 dönerken listeyi
	// store'dan yeniden okuyup cevaba koymalı ki arayüz resetlenebilsin
	require.NoError(t, database.DB.Exec(`
		CREATE TRIGGER fail_slider_order BEFORE UPDATE OF order_index ON sliders
		WHEN NEW.id = 2
		BEGIN SELECT RAISE(ABORT, 'yazma engellendi'); END
	`).Error)

	res, err := app.Test(jsonRequest(t, "POST", "/sliders/reorder", fiber.Map{
		"source_index":      0,
		"destination_index": 2,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, res.StatusCode)

	var body reorderResponse
	decodeBody(t, res, &body)
	assert.NotEmpty(t, body.Error)
	assert.Len(t, body.Items, 3) // Sunucudaki gerçek liste cevapta
}

func TestMutationsWriteAuditLog(t *testing.T) {
	setupTestDB(t)
	app := newSliderApp(t)

	res, err := app.Test(jsonRequest(t, "POST", "/sliders", fiber.Map{
		"title":      "Loglanan",
		"image_path": "/uploads/l.jpg",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	var logs []models.AuditLog
	require.NoError(t, database.DB.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "slider", logs[0].EntityType)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
}
