package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cati-backend/internal/config"
	"cati-backend/internal/database"
	"cati-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MediaResponse struct {
	ID        uint   `json:"id"`
	FileName  string `json:"file_name"`
	Path      string `json:"path"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

func mediaToResponse(m models.MediaFile) MediaResponse {
	return MediaResponse{
		ID:        m.ID,
		FileName:  m.FileName,
		Path:      m.Path,
		MimeType:  m.MimeType,
		SizeBytes: m.SizeBytes,
		Kind:      string(m.Kind),
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// İzin verilen uzantılar; görsel olanlar image, kalanlar file olarak sınıflanır
var allowedExtensions = map[string]models.MediaKind{
	".jpg":  models.MediaKindImage,
	".jpeg": models.MediaKindImage,
	".png":  models.MediaKindImage,
	".webp": models.MediaKindImage,
	".svg":  models.MediaKindImage,
	".pdf":  models.MediaKindFile,
	".docx": models.MediaKindFile,
	".xlsx": models.MediaKindFile,
}

// POST /api/admin/media
func UploadMediaHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		kind, ok := allowedExtensions[ext]
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Bu dosya tipi desteklenmiyor: "+ext)
		}

		if err := os.MkdirAll(cfg.MediaPath, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yükleme klasörü oluşturulamadı")
		}

		storedName := uuid.New().String() + ext
		diskPath := filepath.Join(cfg.MediaPath, storedName)
		if err := c.SaveFile(fileHeader, diskPath); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya kaydedilemedi: "+err.Error())
		}

		m := models.MediaFile{
			FileName:   fileHeader.Filename,
			StoredName: storedName,
			Path:       "/uploads/" + storedName,
			MimeType:   fileHeader.Header.Get("Content-Type"),
			SizeBytes:  fileHeader.Size,
			Kind:       kind,
		}

		if err := database.DB.Create(&m).Error; err != nil {
			// DB kaydı başarısızsa diskteki dosya yetim kalmasın
			_ = os.Remove(diskPath)
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(mediaToResponse(m))
	}
}

// GET /api/admin/media?kind=image
func ListMediaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Order("created_at desc")

		if kind := c.Query("kind"); kind != "" {
			if kind != string(models.MediaKindImage) && kind != string(models.MediaKindFile) {
				return fiber.NewError(fiber.StatusBadRequest, "kind image veya file olmalı")
			}
			query = query.Where("kind = ?", kind)
		}

		var files []models.MediaFile
		if err := query.Find(&files).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosyalar listelenemedi")
		}

		res := make([]MediaResponse, 0, len(files))
		for _, m := range files {
			res = append(res, mediaToResponse(m))
		}
		return c.JSON(res)
	}
}

// DELETE /api/admin/media/:id
func DeleteMediaHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uint
		if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		var m models.MediaFile
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dosya bulunamadı")
		}

		if err := database.DB.Delete(&models.MediaFile{}, "id = ?", m.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya silinemedi")
		}

		// Diskteki kopyayı da temizle; dosya zaten yoksa sorun değil
		diskPath := filepath.Join(cfg.MediaPath, m.StoredName)
		if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya diskten silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
