package catalog

import (
	"log"
	"strings"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/ordering"
	"cati-backend/internal/slug"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// POST /api/admin/products/import
// XLSX dosyasından toplu ürün yükler. Beklenen kolonlar:
// A: Marka adı, B: Ürün adı, C: Açıklama (opsiyonel), D: Premium (evet/hayır, opsiyonel)
// Eksik markalar otomatik oluşturulur, slug çakışan ürünler atlanır.
func ImportProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}

		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası boş")
		}

		// İlk satırın başlık satırı olup olmadığını kontrol et
		startIndex := 0
		if len(rows[0]) > 0 {
			firstCell := strings.ToUpper(strings.TrimSpace(rows[0][0]))
			if strings.Contains(firstCell, "MARKA") || strings.Contains(firstCell, "BRAND") {
				startIndex = 1
				log.Println("İlk satır başlık satırı olarak algılandı, atlanıyor")
			}
		}

		createdCount := 0
		skippedRows := make([]string, 0)

		for i := startIndex; i < len(rows); i++ {
			row := rows[i]
			if len(row) < 2 {
				continue
			}

			brandName := strings.TrimSpace(row[0])
			productName := strings.TrimSpace(row[1])
			if brandName == "" || productName == "" {
				continue
			}

			description := ""
			if len(row) > 2 {
				description = strings.TrimSpace(row[2])
			}
			isPremium := false
			if len(row) > 3 {
				v := strings.ToLower(strings.TrimSpace(row[3]))
				isPremium = v == "evet" || v == "yes" || v == "true" || v == "1"
			}

			// Markayı bul, yoksa oluştur
			var brand models.Brand
			if err := database.DB.Where("name = ?", brandName).First(&brand).Error; err != nil {
				next, nerr := ordering.NextIndex(database.DB, "brands", nil)
				if nerr != nil {
					skippedRows = append(skippedRows, productName)
					continue
				}
				brand = models.Brand{Name: brandName, OrderIndex: next}
				if cerr := database.DB.Create(&brand).Error; cerr != nil {
					log.Printf("Marka oluşturulurken hata (%s): %v", brandName, cerr)
					skippedRows = append(skippedRows, productName)
					continue
				}
			}

			// Slug çakışan ürünleri atla
			productSlug := slug.Make(productName)
			var exist models.Product
			if err := database.DB.Where("slug = ?", productSlug).First(&exist).Error; err == nil {
				skippedRows = append(skippedRows, productName)
				continue
			}

			next, err := ordering.NextIndex(database.DB, "products", brandScope(brand.ID))
			if err != nil {
				skippedRows = append(skippedRows, productName)
				continue
			}

			p := models.Product{
				BrandID:     brand.ID,
				Name:        productName,
				Slug:        productSlug,
				Description: description,
				IsPremium:   isPremium,
				OrderIndex:  next,
			}

			if err := database.DB.Create(&p).Error; err != nil {
				log.Printf("Ürün oluşturulurken hata (%s): %v", productName, err)
				skippedRows = append(skippedRows, productName)
				continue
			}

			createdCount++
		}

		return c.JSON(fiber.Map{
			"success":       true,
			"created_count": createdCount,
			"skipped_rows":  skippedRows,
		})
	}
}
