package ordering

import (
	"cati-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type ReorderRequest struct {
	SourceIndex      int  `json:"source_index"`
	DestinationIndex *int `json:"destination_index"` // null = sürükleme hedefsiz bırakıldı (no-op)
}

// ReorderHandler: Sürükle-bırak sonrası sıralama endpoint'i üretir.
// resolveScope nil ise sıralama kapsamı tablonun tamamıdır.
//
// Başarıda yeni sıralı liste döner. Yazma hatasında optimistic duruma
// güvenilmez: liste store'dan yeniden okunur ve hata ile birlikte döndürülür
// ki arayüz sunucudaki gerçek duruma geri dönebilsin.
func ReorderHandler(table string, resolveScope func(c *fiber.Ctx) (Scope, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var scope Scope
		if resolveScope != nil {
			s, err := resolveScope(c)
			if err != nil {
				return err
			}
			scope = s
		}

		var body ReorderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		// Hedef yoksa işlem yok: mevcut listeyi aynen döndür
		if body.DestinationIndex == nil {
			entries, err := Fetch(database.DB, table, scope)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Liste okunamadı")
			}
			return c.JSON(fiber.Map{"items": entries})
		}

		entries, err := Reorder(c.Context(), database.DB, table, scope, body.SourceIndex, *body.DestinationIndex)
		if err != nil {
			fresh, ferr := Fetch(database.DB, table, scope)
			if ferr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sıralama kaydedilemedi")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Sıralama kaydedilemedi",
				"items": fresh,
			})
		}

		return c.JSON(fiber.Map{"items": entries})
	}
}
