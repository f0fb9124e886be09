package ordering

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Entry: Sıralanabilir bir kaydın kimliği ve sıra numarası
type Entry struct {
	ID         uint `json:"id"`
	OrderIndex int  `json:"order_index"`
}

// Scope: Sıralama kapsamını daraltan filtre (örn: product_id = ? AND profile_id IS NULL).
// Reorder yalnızca aynı kapsamdaki satırlara dokunur; farklı kapsamlardaki
// order_index değerleri çakışabilir, okumalar her zaman aynı filtreyle yapılır.
type Scope func(*gorm.DB) *gorm.DB

// Move: sourceIndex'teki elemanı çıkarıp destinationIndex'e ekler (swap değil,
// aradaki her eleman bir kayar), sonra TÜM listeyi 0'dan başlayarak yeniden
// numaralandırır. Böylece önceki veride boşluk/tekrar olsa bile sonuç her
// zaman 0..N-1 olur. destinationIndex < 0 ise sürükleme geçerli bir hedefe
// bırakılmamıştır: liste değişmeden döner ve hiçbir yazma yapılmaz.
func Move(entries []Entry, sourceIndex, destinationIndex int) ([]Entry, bool) {
	if destinationIndex < 0 {
		return entries, false
	}
	if sourceIndex < 0 || sourceIndex >= len(entries) || destinationIndex >= len(entries) {
		return entries, false
	}

	item := entries[sourceIndex]

	rest := make([]Entry, 0, len(entries))
	rest = append(rest, entries[:sourceIndex]...)
	rest = append(rest, entries[sourceIndex+1:]...)

	result := make([]Entry, 0, len(entries))
	result = append(result, rest[:destinationIndex]...)
	result = append(result, item)
	result = append(result, rest[destinationIndex:]...)

	for i := range result {
		result[i].OrderIndex = i
	}

	return result, true
}

// Fetch: Kapsam içindeki kayıtları order_index'e göre sıralı okur
func Fetch(db *gorm.DB, table string, scope Scope) ([]Entry, error) {
	q := db.Table(table).Select("id, order_index")
	if scope != nil {
		q = scope(q)
	}

	entries := make([]Entry, 0)
	if err := q.Order("order_index asc, id asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("sıralı liste okunamadı: %w", err)
	}
	return entries, nil
}

// Persist: Her kayıt için bağımsız tek satırlık order_index update'i atar.
// Update'ler birbirinden bağımsız satırlara dokunduğu için eşzamanlı gönderilir.
// Herhangi biri başarısız olursa batch'in tamamı başarısız sayılır; kısmi
// başarı durumu desteklenmez, çağıran listeyi store'dan yeniden yüklemelidir.
func Persist(ctx context.Context, db *gorm.DB, table string, entries []Entry) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			res := db.WithContext(gctx).Table(table).Where("id = ?", e.ID).Update("order_index", e.OrderIndex)
			if res.Error != nil {
				return fmt.Errorf("sıra güncellenemedi (id=%d): %w", e.ID, res.Error)
			}
			return nil
		})
	}
	return g.Wait()
}

// Reorder: Kapsamdaki listeyi okur, taşımayı uygular ve yeni sıralamayı yazar.
// Taşıma geçersizse (hedef yok veya index kapsam dışı) hiçbir yazma yapılmaz
// ve mevcut liste döner.
func Reorder(ctx context.Context, db *gorm.DB, table string, scope Scope, sourceIndex, destinationIndex int) ([]Entry, error) {
	entries, err := Fetch(db, table, scope)
	if err != nil {
		return nil, err
	}

	moved, changed := Move(entries, sourceIndex, destinationIndex)
	if !changed {
		return entries, nil
	}

	if err := Persist(ctx, db, table, moved); err != nil {
		return nil, err
	}
	return moved, nil
}

// NextIndex: Yeni kayıt için sıra numarası (listenin sonuna ekle)
func NextIndex(db *gorm.DB, table string, scope Scope) (int, error) {
	q := db.Table(table)
	if scope != nil {
		q = scope(q)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("kayıt sayısı okunamadı: %w", err)
	}
	return int(count), nil
}
