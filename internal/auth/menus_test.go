package auth

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
	"cati-backend/internal/relations"

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
		&models.Role{},
		&models.User{},
		&models.MenuItem{},
		&models.RoleMenu{},
	))
	database.DB = db
}

func seedRolesAndMenus(t *testing.T) (super models.Role, editor models.Role, menus []models.MenuItem) {
	t.Helper()

	super = models.Role{Name: models.RoleSuperAdmin, IsSystem: true}
	require.NoError(t, database.DB.Create(&super).Error)
	editor = models.Role{Name: models.RoleEditor, IsSystem: true}
	require.NoError(t, database.DB.Create(&editor).Error)

	for i, key := range []string{"brands", "products", "sliders"} {
		m := models.MenuItem{Key: key, Title: key, OrderIndex: i}
		require.NoError(t, database.DB.Create(&m).Error)
		menus = append(menus, m)
	}
	return super, editor, menus
}

// Testlerde JWT yerine locals doğrudan set edilir
func withSession(roleID uint, roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(CtxUserIDKey, uint(1))
		c.Locals(CtxRoleIDKey, roleID)
		c.Locals(CtxRoleNameKey, roleName)
		return c.Next()
	}
}

type menusResponse struct {
	Capabilities map[string]bool `json:"capabilities"`
	Items        []struct {
		Key string `json:"key"`
	} `json:"items"`
}

func TestMenusCapabilitiesForEditor(t *testing.T) {
	setupTestDB(t)
	_, editor, menus := seedRolesAndMenus(t)

	// Editöre sadece products atanır
	require.NoError(t, relations.Sync(database.DB, relations.RoleMenus, editor.ID, []uint{menus[1].ID}))

	app := fiber.New()
	app.Get("/auth/menus", withSession(editor.ID, editor.Name), MenusHandler())

	res, err := app.Test(httptest.NewRequest("GET", "/auth/menus", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body menusResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	// Yetki kümesi tüm menüleri kapsar, sadece atanan true döner
	assert.Equal(t, map[string]bool{
		"brands":   false,
		"products": true,
		"sliders":  false,
	}, body.Capabilities)

	require.Len(t, body.Items, 1)
	assert.Equal(t, "products", body.Items[0].Key)
}

func TestMenusCapabilitiesForSuperAdmin(t *testing.T) {
	setupTestDB(t)
	super, _, _ := seedRolesAndMenus(t)

	app := fiber.New()
	app.Get("/auth/menus", withSession(super.ID, super.Name), MenusHandler())

	res, err := app.Test(httptest.NewRequest("GET", "/auth/menus", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body menusResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	for key, ok := range body.Capabilities {
		assert.True(t, ok, key)
	}
	assert.Len(t, body.Items, 3)
}

func TestMenusReflectSyncReplacement(t *testing.T) {
	setupTestDB(t)
	_, editor, menus := seedRolesAndMenus(t)

	require.NoError(t, relations.Sync(database.DB, relations.RoleMenus, editor.ID, []uint{menus[0].ID}))
	// Atama tam küme değişimi: brands yerine sliders
	require.NoError(t, relations.Sync(database.DB, relations.RoleMenus, editor.ID, []uint{menus[2].ID}))

	app := fiber.New()
	app.Get("/auth/menus", withSession(editor.ID, editor.Name), MenusHandler())

	res, err := app.Test(httptest.NewRequest("GET", "/auth/menus", nil))
	require.NoError(t, err)

	var body menusResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.False(t, body.Capabilities["brands"])
	assert.True(t, body.Capabilities["sliders"])
}

func TestRequireMenuBlocksUnassignedRole(t *testing.T) {
	setupTestDB(t)
	super, editor, menus := seedRolesAndMenus(t)

	require.NoError(t, relations.Sync(database.DB, relations.RoleMenus, editor.ID, []uint{menus[1].ID}))

	handler := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app := fiber.New()
	app.Get("/editor/brands", withSession(editor.ID, editor.Name), RequireMenu("brands"), handler)
	app.Get("/editor/products", withSession(editor.ID, editor.Name), RequireMenu("products"), handler)
	app.Get("/super/brands", withSession(super.ID, super.Name), RequireMenu("brands"), handler)

	res, err := app.Test(httptest.NewRequest("GET", "/editor/brands", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("GET", "/editor/products", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	// super_admin atamasız da geçer
	res, err = app.Test(httptest.NewRequest("GET", "/super/brands", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}
