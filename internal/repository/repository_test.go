package repository

import (
	"testing"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// keep every statement on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Payment{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, credits int) *models.User {
	t.Helper()

	user := &models.User{
		FullName: "Test User",
		Email:    "test@example.com",
		Credits:  credits,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
