package relations

import (
	"fmt"
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

	require.NoError(t, db.AutoMigrate(
		&models.Brand{},
		&models.Product{},
		&models.Certificate{},
		&models.ProductCertificate{},
	))
	return db
}

func seedOwnerAndCerts(t *testing.T, db *gorm.DB, certCount int) (models.Product, []models.Certificate) {
	t.Helper()

	brand := models.Brand{Name: "Marka"}
	require.NoError(t, db.Create(&brand).Error)

	product := models.Product{BrandID: brand.ID, Name: "Panel", Slug: "panel"}
	require.NoError(t, db.Create(&product).Error)

	certs := make([]models.Certificate, 0, certCount)
	for i := 0; i < certCount; i++ {
		c := models.Certificate{Title: "Sertifika"}
		require.NoError(t, db.Create(&c).Error)
		certs = append(certs, c)
	}
	return product, certs
}

func TestSyncFullReplace(t *testing.T) {
	db := newTestDB(t)
	product, certs := seedOwnerAndCerts(t, db, 4)

	// Mevcut küme: {a, b, c}
	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[0].ID, certs[1].ID, certs[2].ID}))

	// Yeni küme: {b, d} -> a ve c silinir, d eklenir, b korunur
	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[1].ID, certs[3].ID}))

	got, err := RelatedIDs(db, ProductCertificates, product.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{certs[1].ID, certs[3].ID}, got)
}

func TestSyncIdempotentForStableSet(t *testing.T) {
	db := newTestDB(t)
	product, certs := seedOwnerAndCerts(t, db, 2)
	want := []uint{certs[0].ID, certs[1].ID}

	require.NoError(t, Sync(db, ProductCertificates, product.ID, want))
	require.NoError(t, Sync(db, ProductCertificates, product.ID, want))

	got, err := RelatedIDs(db, ProductCertificates, product.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)

	// Satır sayısı da küme boyutuna eşit (tekrar yok)
	var count int64
	require.NoError(t, db.Model(&models.ProductCertificate{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSyncEmptyClearsAll(t *testing.T) {
	db := newTestDB(t)
	product, certs := seedOwnerAndCerts(t, db, 2)

	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[0].ID, certs[1].ID}))
	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{}))

	got, err := RelatedIDs(db, ProductCertificates, product.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSyncEmptyOnEmptyOwner(t *testing.T) {
	db := newTestDB(t)
	product, _ := seedOwnerAndCerts(t, db, 0)

	// Hiç ataması olmayan owner için boş küme: silme koşulsuz çalışır,
	// ekleme fazı tamamen atlanır
	require.NoError(t, Sync(db, ProductCertificates, product.ID, nil))

	got, err := RelatedIDs(db, ProductCertificates, product.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSyncOverlappingSetNeedsDeleteFirst(t *testing.T) {
	db := newTestDB(t)
	product, certs := seedOwnerAndCerts(t, db, 2)

	// Aynı id'yi içeren yeni küme: silme fazı insert'ten önce çalışmazsa
	// (product_id, certificate_id) unique index'i patlar
	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[0].ID, certs[1].ID}))
	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[0].ID}))

	got, err := RelatedIDs(db, ProductCertificates, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{certs[0].ID}, got)
}

func TestSyncDeduplicatesInput(t *testing.T) {
	db := newTestDB(t)
	product, certs := seedOwnerAndCerts(t, db, 1)

	// Girdideki tekrarlar zararsız olmalı
	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[0].ID, certs[0].ID, certs[0].ID}))

	got, err := RelatedIDs(db, ProductCertificates, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{certs[0].ID}, got)
}

func TestSyncScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	product, certs := seedOwnerAndCerts(t, db, 2)

	other := models.Product{BrandID: product.BrandID, Name: "Membran", Slug: "membran"}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[0].ID}))
	require.NoError(t, Sync(db, ProductCertificates, other.ID, []uint{certs[1].ID}))

	// Bir owner'ın sync'i diğerinin satırlarına dokunmaz
	require.NoError(t, Sync(db, ProductCertificates, product.ID, nil))

	got, err := RelatedIDs(db, ProductCertificates, other.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{certs[1].ID}, got)
}

func TestSyncInsertFailureLeavesZeroRelations(t *testing.T) {
	db := newTestDB(t)
	product, certs := seedOwnerAndCerts(t, db, 2)

	require.NoError(t, Sync(db, ProductCertificates, product.ID, []uint{certs[0].ID}))

	// Ekleme fazını tetikleyiciyle patlat: silme zaten commit edildiği için
	// owner sıfır atamayla kalır ve hata çağırana raporlanır
	require.NoError(t, db.Exec(fmt.Sprintf(`
		CREATE TRIGGER fail_cert_insert BEFORE INSERT ON product_certificates
		WHEN NEW.certificate_id = %d
		BEGIN SELECT RAISE(ABORT, 'ekleme engellendi'); END
	`, certs[1].ID)).Error)

	err := Sync(db, ProductCertificates, product.ID, []uint{certs[1].ID})
	require.Error(t, err)

	got, rerr := RelatedIDs(db, ProductCertificates, product.ID)
	require.NoError(t, rerr)
	assert.Empty(t, got)
}
