package ordering

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"cati-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite: eşzamanlı update'lerin kilitlenmemesi için tek bağlantı
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Slider{}))
	return db
}

func seedSliders(t *testing.T, db *gorm.DB, orders []int) []models.Slider {
	t.Helper()

	sliders := make([]models.Slider, 0, len(orders))
	for _, o := range orders {
		s := models.Slider{
			Title:      "Slider",
			ImagePath:  "/uploads/slider.jpg",
			IsActive:   true,
			OrderIndex: o,
		}
		require.NoError(t, db.Create(&s).Error)
		sliders = append(sliders, s)
	}
	return sliders
}

func TestMoveRenumbersWholeList(t *testing.T) {
	// Başlangıç order değerleri boşluklu ve düzensiz olsa bile sonuç 0..N-1 olmalı
	rnd := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rnd.Intn(10)
		entries := make([]Entry, 0, n)
		order := rnd.Intn(5)
		for i := 0; i < n; i++ {
			entries = append(entries, Entry{ID: uint(i + 1), OrderIndex: order})
			order += 1 + rnd.Intn(4) // boşluklu artan sıra
		}

		src := rnd.Intn(n)
		dst := rnd.Intn(n)

		moved, changed := Move(entries, src, dst)
		require.True(t, changed)
		require.Len(t, moved, n)

		// Taşınan eleman hedef pozisyonda
		assert.Equal(t, entries[src].ID, moved[dst].ID)

		// Sıra numaraları tam olarak 0..N-1
		for i, e := range moved {
			assert.Equal(t, i, e.OrderIndex)
		}

		// Permütasyon: diğer elemanların göreli sırası korunur (kaydırma, swap değil)
		rest := make([]uint, 0, n-1)
		for i, e := range entries {
			if i != src {
				rest = append(rest, e.ID)
			}
		}
		movedRest := make([]uint, 0, n-1)
		for i, e := range moved {
			if i != dst {
				movedRest = append(movedRest, e.ID)
			}
		}
		assert.Equal(t, rest, movedRest)
	}
}

func TestMoveScenario(t *testing.T) {
	// x'i baştan sona taşı: [x,y,z] -> [y,z,x]
	entries := []Entry{{ID: 1, OrderIndex: 0}, {ID: 2, OrderIndex: 1}, {ID: 3, OrderIndex: 2}}

	moved, changed := Move(entries, 0, 2)
	require.True(t, changed)
	assert.Equal(t, []Entry{{ID: 2, OrderIndex: 0}, {ID: 3, OrderIndex: 1}, {ID: 1, OrderIndex: 2}}, moved)
}

func TestMoveNoDestinationIsNoop(t *testing.T) {
	entries := []Entry{{ID: 1, OrderIndex: 0}, {ID: 2, OrderIndex: 1}}

	moved, changed := Move(entries, 0, -1)
	assert.False(t, changed)
	assert.Equal(t, entries, moved)
}

func TestMoveOutOfRangeIsNoop(t *testing.T) {
	entries := []Entry{{ID: 1, OrderIndex: 0}, {ID: 2, OrderIndex: 1}}

	_, changed := Move(entries, 5, 0)
	assert.False(t, changed)

	_, changed = Move(entries, 0, 5)
	assert.False(t, changed)
}

func TestReorderPersistsNewOrder(t *testing.T) {
	db := newTestDB(t)
	sliders := seedSliders(t, db, []int{0, 1, 2})

	moved, err := Reorder(context.Background(), db, "sliders", nil, 0, 2)
	require.NoError(t, err)
	require.Len(t, moved, 3)

	// DB'deki sıra yeni listeyle aynı olmalı
	fresh, err := Fetch(db, "sliders", nil)
	require.NoError(t, err)
	assert.Equal(t, moved, fresh)

	// İlk slider artık en sonda
	assert.Equal(t, sliders[0].ID, fresh[2].ID)
}

func TestReorderScoped(t *testing.T) {
	db := newTestDB(t)

	// Aktif ve pasif slider'lar ayrı kapsamlar gibi davransın:
	// pasif kayıtların order_index'i reorder'dan etkilenmemeli
	active := seedSliders(t, db, []int{0, 1, 2})
	passive := models.Slider{Title: "Pasif", ImagePath: "/uploads/p.jpg", IsActive: false, OrderIndex: 7}
	require.NoError(t, db.Create(&passive).Error)

	scope := func(q *gorm.DB) *gorm.DB { return q.Where("is_active = ?", true) }

	moved, err := Reorder(context.Background(), db, "sliders", scope, 2, 0)
	require.NoError(t, err)
	require.Len(t, moved, 3)
	assert.Equal(t, active[2].ID, moved[0].ID)

	// Kapsam dışındaki kayıt dokunulmamış
	var got models.Slider
	require.NoError(t, db.First(&got, passive.ID).Error)
	assert.Equal(t, 7, got.OrderIndex)
}

func TestReorderFailureLeavesServerTruthReadable(t *testing.T) {
	db := newTestDB(t)
	seedSliders(t, db, []int{0, 1, 2})

	// İkinci kaydın order update'ini tetikleyiciyle patlat: batch'in tamamı
	// başarısız sayılmalı ve çağıran listeyi store'dan yeniden okuyabilmeli
	require.NoError(t, db.Exec(`
		CREATE TRIGGER fail_slider_order BEFORE UPDATE OF order_index ON sliders
		WHEN NEW.id = 2
		BEGIN SELECT RAISE(ABORT, 'yazma engellendi'); END
	`).Error)

	moved, err := Reorder(context.Background(), db, "sliders", nil, 0, 2)
	require.Error(t, err)
	assert.Nil(t, moved)

	// Sunucu durumu hala okunabilir: kısmi sonuç ne olursa olsun
	// arayüz bu listeyle kendini resetler
	fresh, err := Fetch(db, "sliders", nil)
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}

func TestNextIndex(t *testing.T) {
	db := newTestDB(t)

	n, err := NextIndex(db, "sliders", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	seedSliders(t, db, []int{0, 1, 2})

	n, err = NextIndex(db, "sliders", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	scope := func(q *gorm.DB) *gorm.DB { return q.Where("is_active = ?", false) }
	n, err = NextIndex(db, "sliders", scope)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
