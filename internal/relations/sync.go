package relations

import (
	"fmt"

	"gorm.io/gorm"
)

// Junction: Bir many-to-many junction tablosunun adı ve foreign key kolonları
type Junction struct {
	Table         string
	OwnerColumn   string
	RelatedColumn string
}

// Kullanılan junction tabloları
var (
	ProductCertificates = Junction{Table: "product_certificates", OwnerColumn: "product_id", RelatedColumn: "certificate_id"}
	ProductBadges       = Junction{Table: "product_badges", OwnerColumn: "product_id", RelatedColumn: "badge_id"}
	ProfileCertificates = Junction{Table: "profile_certificates", OwnerColumn: "product_profile_id", RelatedColumn: "certificate_id"}
	ProfileBadges       = Junction{Table: "profile_badges", OwnerColumn: "product_profile_id", RelatedColumn: "badge_id"}
	RoleMenus           = Junction{Table: "role_menus", OwnerColumn: "role_id", RelatedColumn: "menu_item_id"}
)

// Sync: Owner'ın junction satırlarını istenen kümeyle TAMAMEN değiştirir
// (full-replace, merge değil). relatedIDs delta değil, istenen kümenin
// tamamıdır; boş küme "tüm atamaları kaldır" demektir.
//
// İki faz, sıkı sıralı:
//  1. Silme: owner'a ait tüm satırlar koşulsuz silinir
//  2. Ekleme: küme boş değilse her id için bir satır toplu insert edilir
//
// Silme fazı başarısız olursa ekleme hiç denenmez (mevcut satırlar yerinde
// kalır). Silme başarılı olup ekleme başarısız olursa owner sıfır atamayla
// kalır ve hata döner; telafi edici rollback yoktur, tekrar deneme çağıranın
// sorumluluğundadır. Owner satırının var olması fazların ön koşuludur;
// handler'lar Sync'ten önce owner'ı store'dan doğrular.
func Sync(db *gorm.DB, j Junction, ownerID uint, relatedIDs []uint) error {
	// 1. Silme fazı
	if err := db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", j.Table, j.OwnerColumn), ownerID,
	).Error; err != nil {
		return fmt.Errorf("mevcut atamalar silinemedi: %w", err)
	}

	// 2. Ekleme fazı
	// Girdideki tekrarlar zararsızdır; unique index'e takılmamak için tekilleştirilir
	ids := dedupe(relatedIDs)
	if len(ids) == 0 {
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]interface{}{
			j.OwnerColumn:   ownerID,
			j.RelatedColumn: id,
		})
	}

	if err := db.Table(j.Table).Create(&rows).Error; err != nil {
		return fmt.Errorf("atamalar eklenemedi: %w", err)
	}
	return nil
}

// RelatedIDs: Owner'ın mevcut atama kümesini okur
func RelatedIDs(db *gorm.DB, j Junction, ownerID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := db.Table(j.Table).
		Where(fmt.Sprintf("%s = ?", j.OwnerColumn), ownerID).
		Order(fmt.Sprintf("%s asc", j.RelatedColumn)).
		Pluck(j.RelatedColumn, &ids).Error
	if err != nil {
		return nil, fmt.Errorf("atamalar okunamadı: %w", err)
	}
	return ids, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
