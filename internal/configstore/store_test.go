package configstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"accreditation-gateway/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AppConfig{}))
	return db
}

func testStore(t *testing.T, db *gorm.DB) (*Store, string) {
	t.Helper()
	cachePath := filepath.Join(t.TempDir(), "config_cache.json")
	return New(db, cachePath, zaptest.NewLogger(t)), cachePath
}

func TestLoad_SeedsDefaultWhenMissing(t *testing.T) {
	db := testDB(t)
	store, cachePath := testStore(t, db)

	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig().SiteTitle, cfg.SiteTitle)
	assert.Equal(t, "123456", cfg.AdminPassword)
	assert.True(t, cfg.ShowFields.AgencyName)

	// The default was written remotely, not just adopted in memory.
	var count int64
	db.Model(&models.AppConfig{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// And mirrored to the fallback cache.
	_, statErr := os.Stat(cachePath)
	assert.NoError(t, statErr)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	db := testDB(t)
	store, _ := testStore(t, db)

	logo := "data:image/png;base64,xyz"
	saved := models.DefaultConfig()
	saved.SiteTitle = "Custom Portal"
	saved.ContactWhatsapp = "+966 555 000 111"
	saved.LogoImage = &logo
	saved.AdminPassword = "s3cret"
	saved.ShowFields.Whatsapp = false

	require.NoError(t, store.Save(context.Background(), saved))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved.SiteTitle, loaded.SiteTitle)
	assert.Equal(t, saved.ContactWhatsapp, loaded.ContactWhatsapp)
	assert.Equal(t, saved.AdminPassword, loaded.AdminPassword)
	require.NotNil(t, loaded.LogoImage)
	assert.Equal(t, logo, *loaded.LogoImage)
	assert.Equal(t, saved.ShowFields, loaded.ShowFields)
}

func TestSave_ReplacesWholesale(t *testing.T) {
	db := testDB(t)
	store, _ := testStore(t, db)

	first := models.DefaultConfig()
	first.SiteTitle = "First"
	require.NoError(t, store.Save(context.Background(), first))

	second := models.DefaultConfig()
	second.SiteTitle = "Second"
	second.CustomFooterText = "All rights reserved"
	require.NoError(t, store.Save(context.Background(), second))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.SiteTitle)
	assert.Equal(t, "All rights reserved", loaded.CustomFooterText)

	var count int64
	db.Model(&models.AppConfig{}).Count(&count)
	assert.EqualValues(t, 1, count, "single document per deployment")
}

func TestLoad_FallbackSnapshotOnRemoteFailure(t *testing.T) {
	// A database without the collection migrated stands in for an
	// unreachable remote store.
	broken, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "broken.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	cachePath := filepath.Join(t.TempDir(), "config_cache.json")
	snapshot := models.DefaultConfig()
	snapshot.SiteTitle = "Cached Title"
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cachePath, data, 0o644))

	store := New(broken, cachePath, zaptest.NewLogger(t))
	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cached Title", cfg.SiteTitle)
}

func TestLoad_NoFallbackPropagatesError(t *testing.T) {
	broken, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "broken.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	store := New(broken, filepath.Join(t.TempDir(), "missing.json"), zaptest.NewLogger(t))
	cfg, err := store.Load(context.Background())
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNoFallback)
}

func TestSave_MirrorsCacheOnSuccess(t *testing.T) {
	db := testDB(t)
	store, cachePath := testStore(t, db)

	cfg := models.DefaultConfig()
	cfg.SiteTitle = "Mirrored"
	require.NoError(t, store.Save(context.Background(), cfg))

	data, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	var cached models.AppConfig
	require.NoError(t, json.Unmarshal(data, &cached))
	assert.Equal(t, "Mirrored", cached.SiteTitle)
}
