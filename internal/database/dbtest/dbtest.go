// Package dbtest opens throwaway in-memory databases for package tests.
package dbtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/localnerve/materialsdb/internal/database"
	"github.com/localnerve/materialsdb/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens a private in-memory sqlite database with the schema migrated.
// A single connection is used, so code under test must only use the tx inside transactions.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// CreateMaterial inserts m, filling the required columns when blank
func CreateMaterial(t testing.TB, db *gorm.DB, m *models.Material) *models.Material {
	t.Helper()
	if m.Name == "" {
		m.Name = "Material " + uuid.NewString()[:8]
	}
	if m.Manufacturer == "" {
		m.Manufacturer = "Acme Polymers"
	}
	if m.MaterialType == "" {
		m.MaterialType = "ABS"
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

// CreateVendor inserts a vendor named name
func CreateVendor(t testing.TB, db *gorm.DB, name string) *models.Vendor {
	t.Helper()
	v := &models.Vendor{Name: name}
	require.NoError(t, db.Create(v).Error)
	return v
}
